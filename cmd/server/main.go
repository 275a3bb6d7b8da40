package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artgie-web/internal/assets"
	"artgie-web/internal/carousel"
	"artgie-web/internal/category"
	"artgie-web/internal/config"
	"artgie-web/internal/icon"
	"artgie-web/internal/logger"
	"artgie-web/internal/metrics"
	"artgie-web/internal/middleware"
	"artgie-web/internal/product"
	"artgie-web/internal/theme"
	"artgie-web/internal/view"
	"artgie-web/internal/web"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	sweepInterval     = time.Minute
	readHeaderTimeout = 5 * time.Second
)

// startServerFunc is swapped out in tests.
var startServerFunc = serve

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	app, err := newServer(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	logger.L().Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(ctx, addr, app.handler)
}

type server struct {
	handler  http.Handler
	sessions *theme.Store
	limiter  *middleware.RateLimiter
}

func (s *server) Close() {
	s.limiter.Stop()
	s.sessions.Stop()
}

// newServer builds every dependency of the site and starts the background
// sweepers. Close stops them.
func newServer(cfg *config.Config) (*server, error) {
	repo, err := product.NewStaticRepository()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	renderer, err := view.NewRenderer(icon.NewSVGRenderer())
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	stats := metrics.NewSite()
	sessions := theme.NewStore(cfg.SessionTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, stats)

	h := web.NewHandler(web.Options{
		Products:      product.NewService(repo),
		Categories:    category.NewService(repo),
		Renderer:      renderer,
		Hero:          assets.NewHero(cfg.StaticDir),
		Sessions:      sessions,
		Stats:         stats,
		Carousel:      carousel.DefaultLayout(cfg.CarouselViewport),
		FeaturedLimit: cfg.FeaturedLimit,
	})

	sessions.StartSweeper(sweepInterval)
	limiter.StartCleanup(sweepInterval)

	return &server{
		handler:  setupRouter(h, stats, limiter, sessions),
		sessions: sessions,
		limiter:  limiter,
	}, nil
}

// setupRouter wraps the routes in the middleware chain, outermost first.
func setupRouter(h *web.Handler, stats *metrics.Site, limiter *middleware.RateLimiter, sessions *theme.Store) http.Handler {
	return middleware.Chain(web.NewRouter(h),
		logger.RequestIDMiddleware,
		logger.LoggingMiddleware,
		middleware.Count(stats),
		middleware.Recover,
		limiter.Middleware,
		sessions.Middleware,
	)
}

// serve runs the HTTP server until ctx is cancelled, then drains it.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
