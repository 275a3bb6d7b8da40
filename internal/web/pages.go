package web

import (
	"net/http"

	"artgie-web/internal/logger"
	"artgie-web/internal/utils"
	"artgie-web/internal/view"

	"go.uber.org/zap"
)

const (
	homeTitle     = view.SiteName + " - Custom Signs"
	productsTitle = "Products | " + view.SiteName
	notFoundTitle = "Not Found | " + view.SiteName
)

// formAction parses a page form and its action. Theme toggles are applied to
// the session here; the page state treats them as a no-op.
func (h *Handler) formAction(w http.ResponseWriter, r *http.Request) (view.Action, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return view.Action{}, false
	}
	a, err := view.ParseAction(r.PostForm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return view.Action{}, false
	}
	if a.Kind == view.ActionToggleTheme {
		h.toggleTheme(r)
	}
	return a, true
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(zap.String("layer", "handler"), zap.String("method", "Home"))

	featured, err := h.products.Featured(ctx, h.featuredLimit)
	if err != nil {
		log.Error("failed to load featured products", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	state := view.HomeState{Carousel: h.carousel.Mount(len(featured))}
	status := http.StatusOK

	if r.Method == http.MethodPost {
		a, ok := h.formAction(w, r)
		if !ok {
			return
		}
		state = view.DecodeHomeState(r.PostForm, h.carousel, len(featured))
		next, err := state.Apply(a)
		if err != nil {
			log.Warn("rejected home action", zap.String("action", a.String()), zap.Error(err))
			status = http.StatusBadRequest
		} else {
			state = next
		}
	}

	page := view.NewHomePage(h.layout(r, homeTitle), state, h.carousel, featured)
	h.render(w, r, status, view.PageHome, page)
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(zap.String("layer", "handler"), zap.String("method", "Products"))

	var state view.ProductsState
	status := http.StatusOK

	if r.Method == http.MethodPost {
		a, ok := h.formAction(w, r)
		if !ok {
			return
		}
		state = view.DecodeProductsState(r.PostForm)
		next, err := state.Apply(a)
		if err != nil {
			log.Warn("rejected products action", zap.String("action", a.String()), zap.Error(err))
			status = http.StatusBadRequest
		} else {
			state = next
		}
	}

	result, err := h.products.List(ctx, state.ListOptions())
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	labels, err := h.categories.Labels(ctx)
	if err != nil {
		log.Error("failed to load categories", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	meta, err := h.products.FilterMetadata(ctx)
	if err != nil {
		log.Warn("filter metadata unavailable", zap.Error(err))
		meta = nil
	}

	page := view.NewProductsPage(h.layout(r, productsTitle), state, labels, result, meta)
	h.render(w, r, status, view.PageProducts, page)
}

// ToggleTheme flips the session theme and sends the browser back to the
// page it came from.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if a := r.PostForm.Get("action"); a == "" || a == view.ActionToggleTheme {
		h.toggleTheme(r)
	}
	http.Redirect(w, r, utils.LocalPath(r.PostForm.Get("return"), "/"), http.StatusSeeOther)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	l := h.layout(r, notFoundTitle)
	// the navbar form has nowhere else to post on an unknown path
	l.Path = "/theme/toggle"
	l.Hidden = []view.HiddenField{{Name: "return", Value: "/"}}
	h.render(w, r, http.StatusNotFound, view.PageNotFound, view.NotFoundPage{Layout: l})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	if h.hero == nil {
		http.NotFound(w, r)
		return
	}
	h.hero.ServeHTTP(w, r)
}
