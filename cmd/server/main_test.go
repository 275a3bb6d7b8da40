package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artgie-web/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:          "8080",
		AppEnv:           "test",
		StaticDir:        "./does-not-exist",
		SessionTTL:       time.Hour,
		CarouselViewport: 1200,
		FeaturedLimit:    8,
		RateLimitRPS:     100,
		RateLimitBurst:   100,
	}
}

func TestSetupRouter(t *testing.T) {
	app, err := newServer(testConfig())
	require.NoError(t, err)
	defer app.Close()

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		app.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Home renders without creating a session", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()

		app.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Featured Signs")
		assert.Empty(t, rr.Result().Cookies())
		assert.Equal(t, 0, app.sessions.Len())
	})

	t.Run("Not found is counted", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/missing", nil)
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		req, _ = http.NewRequest("GET", "/api/stats", nil)
		rr = httptest.NewRecorder()
		app.handler.ServeHTTP(rr, req)
		assert.Contains(t, rr.Body.String(), `"notFound":1`)
	})
}

func TestServe_GracefulShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, addr, http.NotFoundHandler())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun(t *testing.T) {
	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()

	var gotAddr string
	startServerFunc = func(ctx context.Context, addr string, handler http.Handler) error {
		gotAddr = addr
		assert.NotNil(t, handler)
		return nil
	}

	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "test")

	assert.NoError(t, run())
	assert.Equal(t, ":9090", gotAddr)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")
	assert.Error(t, run())
}
