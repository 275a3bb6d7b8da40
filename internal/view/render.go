package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"artgie-web/internal/icon"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	PageHome     = "home"
	PageProducts = "products"
	PageNotFound = "notfound"
)

// Renderer executes the page templates. Each page is parsed together with
// the shared layout so their "content" blocks do not collide.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(icons icon.Renderer) (*Renderer, error) {
	funcs := template.FuncMap{
		"icon": func(name, class string) template.HTML {
			return icons.Render(name, class)
		},
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageHome, PageProducts, PageNotFound} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes the page into w. Callers that must not send a partial
// page buffer w themselves.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}
