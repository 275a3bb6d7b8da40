package web

import (
	"bytes"
	"net/http"
	"time"

	"artgie-web/internal/carousel"
	"artgie-web/internal/category"
	"artgie-web/internal/logger"
	"artgie-web/internal/metrics"
	"artgie-web/internal/product"
	"artgie-web/internal/theme"
	"artgie-web/internal/view"

	"go.uber.org/zap"
)

// Handler serves the site pages and the JSON API.
type Handler struct {
	products      product.Service
	categories    category.Service
	renderer      *view.Renderer
	hero          http.Handler
	sessions      *theme.Store
	stats         *metrics.Site
	carousel      carousel.Layout
	featuredLimit int
	now           func() time.Time
}

type Options struct {
	Products      product.Service
	Categories    category.Service
	Renderer      *view.Renderer
	Hero          http.Handler
	Sessions      *theme.Store
	Stats         *metrics.Site
	Carousel      carousel.Layout
	FeaturedLimit int
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		products:      opts.Products,
		categories:    opts.Categories,
		renderer:      opts.Renderer,
		hero:          opts.Hero,
		sessions:      opts.Sessions,
		stats:         opts.Stats,
		carousel:      opts.Carousel,
		featuredLimit: opts.FeaturedLimit,
		now:           time.Now,
	}
	if h.stats == nil {
		h.stats = metrics.NewSite()
	}
	if h.featuredLimit <= 0 {
		h.featuredLimit = 8
	}
	if h.carousel.CardWidth == 0 {
		h.carousel = carousel.DefaultLayout(1200)
	}
	return h
}

func (h *Handler) layout(r *http.Request, title string) view.Layout {
	return view.Layout{
		Title:    title,
		Path:     r.URL.Path,
		Theme:    theme.FromContext(r.Context()).Theme(),
		NavItems: view.NavItems,
		Footer:   view.NewFooter(h.now().Year()),
	}
}

// render executes the page into a buffer so a template failure can still be
// reported as a 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		logger.FromCtx(r.Context()).Error("failed to render page",
			zap.String("page", page),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.stats.PageViews.Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// toggleTheme flips the theme of the session attached to the request.
func (h *Handler) toggleTheme(r *http.Request) theme.Theme {
	next := theme.FromContext(r.Context()).Toggle()
	h.stats.ThemeToggles.Inc()
	logger.FromCtx(r.Context()).Debug("theme toggled", zap.String("theme", next.String()))
	return next
}
