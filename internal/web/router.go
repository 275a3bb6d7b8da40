package web

import "net/http"

// NewRouter registers every route of the site on a fresh mux.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("POST /{$}", h.Home)
	mux.HandleFunc("GET /products", h.Products)
	mux.HandleFunc("POST /products", h.Products)
	mux.HandleFunc("POST /theme/toggle", h.ToggleTheme)
	mux.HandleFunc("GET /hero.jpg", h.Hero)

	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/filters", h.Filters)
	mux.HandleFunc("GET /api/stats", h.Stats)

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("/", h.NotFound)
	return mux
}
