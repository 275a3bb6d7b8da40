package web

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"artgie-web/internal/category"
	"artgie-web/internal/logger"
	"artgie-web/internal/metrics"
	"artgie-web/internal/product"
	"artgie-web/internal/utils"

	"go.uber.org/zap"
)

type productListResponse struct {
	Items      []product.Product `json:"items"`
	TotalCount int               `json:"totalCount"`
	Sort       product.SortMode  `json:"sort"`
}

type sortModeResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type filtersResponse struct {
	Categories   []string                 `json:"categories"`
	SortModes    []sortModeResponse       `json:"sortModes"`
	Availability product.AvailabilityData `json:"availability"`
	PriceRange   product.PriceRangeData   `json:"priceRange"`
}

type statsResponse struct {
	metrics.Snapshot
	Sessions int `json:"sessions"`
}

// listOptionsFromQuery reads ?category=..&category=..&in_stock=true&sort=price-asc.
func listOptionsFromQuery(r *http.Request) (product.ListOptions, error) {
	q := r.URL.Query()

	var opts product.ListOptions
	for _, c := range q["category"] {
		c = strings.TrimSpace(c)
		if c != "" && c != category.All && !slices.Contains(opts.Filter.Categories, c) {
			opts.Filter.Categories = append(opts.Filter.Categories, c)
		}
	}
	opts.Filter.InStockOnly = utils.ParseBool(q.Get("in_stock"))

	mode, err := product.ParseSortMode(q.Get("sort"))
	if err != nil {
		return opts, err
	}
	opts.Sort = mode
	return opts, nil
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(zap.String("layer", "handler"), zap.String("method", "ListProducts"))

	opts, err := listOptionsFromQuery(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.products.List(ctx, opts)
	if err != nil {
		if errors.Is(err, product.ErrInvalidSortMode) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error("failed to list products", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, productListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Sort:       opts.Sort,
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, product.ErrInvalidProductID.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.products.GetByID(ctx, id)
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		logger.FromCtx(ctx).Error("failed to get product", zap.Int("id", id), zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetCategories(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to get categories", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	labels, err := h.categories.Labels(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get categories", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	meta, err := h.products.FilterMetadata(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get filter metadata", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	modes := make([]sortModeResponse, 0, len(product.SortModes()))
	for _, m := range product.SortModes() {
		modes = append(modes, sortModeResponse{Value: m.String(), Label: m.Label()})
	}

	utils.WriteJSON(w, http.StatusOK, filtersResponse{
		Categories:   category.Checklist(labels),
		SortModes:    modes,
		Availability: meta.Availability,
		PriceRange:   meta.PriceRange,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp := statsResponse{Snapshot: h.stats.Snapshot()}
	if h.sessions != nil {
		resp.Sessions = h.sessions.Len()
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
