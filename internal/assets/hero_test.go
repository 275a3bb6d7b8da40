package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJPEG(t *testing.T, dir string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, HeroFile)))
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestOptimize(t *testing.T) {
	big := imaging.New(4000, 2000, color.White)
	data, err := Optimize(big, 1000, 70)
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())

	small := imaging.New(300, 200, color.White)
	data, err = Optimize(small, 1000, 70)
	require.NoError(t, err)
	assert.Equal(t, 300, decode(t, data).Bounds().Dx())
}

func TestHero_LoadsAndResizes(t *testing.T) {
	dir := t.TempDir()
	writeJPEG(t, dir, 2400, 1200)

	h := NewHero(dir)
	data, placeholder := h.Load(context.Background())
	assert.False(t, placeholder)
	assert.Equal(t, heroMaxWidth, decode(t, data).Bounds().Dx())
}

func TestHero_MissingFileDegradesToPlaceholder(t *testing.T) {
	h := NewHero(t.TempDir())

	data, placeholder := h.Load(context.Background())
	assert.True(t, placeholder)
	img := decode(t, data)
	assert.Equal(t, placeholderW, img.Bounds().Dx())
	assert.Equal(t, placeholderH, img.Bounds().Dy())
}

func TestHero_ServeHTTP(t *testing.T) {
	t.Run("Real image", func(t *testing.T) {
		dir := t.TempDir()
		writeJPEG(t, dir, 200, 100)
		h := NewHero(dir)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hero.jpg", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Cache-Control"), "max-age")
		assert.Empty(t, w.Header().Get("X-Placeholder"))
	})

	t.Run("Placeholder", func(t *testing.T) {
		h := NewHero(t.TempDir())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hero.jpg", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("X-Placeholder"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		decode(t, w.Body.Bytes())
	})
}
