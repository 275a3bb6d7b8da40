// Package assets serves the site's static images.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"artgie-web/internal/logger"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	HeroFile = "hero.jpg"

	heroMaxWidth  = 1920
	heroQuality   = 80
	placeholderW  = 1200
	placeholderH  = 630
	cacheMaxAge   = 24 * time.Hour
	contentTypeJP = "image/jpeg"
)

// brandNavy backs the placeholder served when the hero image is unavailable.
var brandNavy = color.NRGBA{R: 0x00, G: 0x1f, B: 0x3f, A: 0xff}

// Hero serves the optimized hero image. The source file is read, resized and
// re-encoded once; a missing or unreadable file yields a placeholder image
// rather than an error.
type Hero struct {
	path string

	once        sync.Once
	data        []byte
	placeholder bool
	modTime     time.Time
}

func NewHero(staticDir string) *Hero {
	return &Hero{path: filepath.Join(staticDir, HeroFile)}
}

// Load returns the encoded image and whether it is the placeholder.
func (h *Hero) Load(ctx context.Context) ([]byte, bool) {
	h.once.Do(func() {
		log := logger.FromCtx(ctx).With(
			zap.String("layer", "assets"),
			zap.String("path", h.path),
		)

		data, modTime, err := optimizeFile(h.path)
		if err == nil {
			h.data, h.modTime = data, modTime
			log.Info("hero image optimized", zap.Int("bytes", len(data)))
			return
		}

		log.Warn("hero image unavailable, serving placeholder", zap.Error(err))
		h.data, err = Placeholder(placeholderW, placeholderH)
		if err != nil {
			log.Error("failed to encode placeholder", zap.Error(err))
		}
		h.placeholder = true
		h.modTime = time.Now()
	})
	return h.data, h.placeholder
}

func (h *Hero) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, placeholder := h.Load(r.Context())
	if len(data) == 0 {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentTypeJP)
	if placeholder {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Placeholder", "true")
	} else {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(cacheMaxAge.Seconds())))
	}
	http.ServeContent(w, r, HeroFile, h.modTime, bytes.NewReader(data))
}

func optimizeFile(path string) ([]byte, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode image: %w", err)
	}

	data, err := Optimize(img, heroMaxWidth, heroQuality)
	if err != nil {
		return nil, time.Time{}, err
	}
	return data, info.ModTime(), nil
}

// Optimize scales img down to maxWidth (keeping aspect ratio) and encodes it as JPEG.
func Optimize(img image.Image, maxWidth, quality int) ([]byte, error) {
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// Placeholder draws a solid brand-colored JPEG.
func Placeholder(width, height int) ([]byte, error) {
	return Optimize(imaging.New(width, height, brandNavy), width, heroQuality)
}
