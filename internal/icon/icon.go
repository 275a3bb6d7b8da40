// Package icon renders named glyphs for the page templates.
package icon

import (
	"fmt"
	"html/template"
	"strings"
)

// Renderer turns an icon name into markup. Templates only see this interface,
// so the glyph source can be swapped without touching them.
type Renderer interface {
	Render(name, class string) template.HTML
}

// SVGRenderer draws stroke icons from a built-in path table.
type SVGRenderer struct {
	paths map[string]string
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{paths: builtinPaths}
}

// Render returns an inline SVG, or empty markup for an unknown name.
func (r *SVGRenderer) Render(name, class string) template.HTML {
	body, ok := r.paths[name]
	if !ok {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" class="%s" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="%s">%s</svg>`,
		template.HTMLEscapeString(class), name, body,
	))
}

func (r *SVGRenderer) Has(name string) bool {
	_, ok := r.paths[name]
	return ok
}

// Names lists the built-in icons.
func (r *SVGRenderer) Names() []string {
	names := make([]string, 0, len(r.paths))
	for n := range r.paths {
		names = append(names, n)
	}
	return names
}

func p(d ...string) string {
	var b strings.Builder
	for _, s := range d {
		fmt.Fprintf(&b, `<path d="%s"/>`, s)
	}
	return b.String()
}

var builtinPaths = map[string]string{
	"arrow-right":        p("M5 12h14", "m12 5 7 7-7 7"),
	"chevron-left":       p("m15 18-6-6 6-6"),
	"chevron-right":      p("m9 18 6-6-6-6"),
	"shopping-cart":      `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/>` + p("M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"),
	"sliders-horizontal": p("M21 4h-7", "M10 4H3", "M21 12h-9", "M8 12H3", "M21 20h-5", "M12 20H3", "M14 2v4", "M8 10v4", "M16 18v4"),
	"x":                  p("M18 6 6 18", "m6 6 12 12"),
	"menu":               p("M4 12h16", "M4 6h16", "M4 18h16"),
	"sun":                `<circle cx="12" cy="12" r="4"/>` + p("M12 2v2", "M12 20v2", "m4.93 4.93 1.41 1.41", "m17.66 17.66 1.41 1.41", "M2 12h2", "M20 12h2", "m6.34 17.66-1.41 1.41", "m19.07 4.93-1.41 1.41"),
	"moon":               p("M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"),
	"award":              `<circle cx="12" cy="8" r="6"/>` + p("M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"),
	"zap":                p("M4 14a1 1 0 0 1-.78-1.63l9.9-10.2a.5.5 0 0 1 .86.46l-1.92 6.02A1 1 0 0 0 13 10h7a1 1 0 0 1 .78 1.63l-9.9 10.2a.5.5 0 0 1-.86-.46l1.92-6.02A1 1 0 0 0 11 14z"),
	"tag":                p("M12.586 2.586A2 2 0 0 0 11.172 2H4a2 2 0 0 0-2 2v7.172a2 2 0 0 0 .586 1.414l8.704 8.704a2.426 2.426 0 0 0 3.42 0l6.58-6.58a2.426 2.426 0 0 0 0-3.42z") + `<circle cx="7.5" cy="7.5" r=".5"/>`,
	"phone":              p("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"),
	"mail":               `<rect width="20" height="16" x="2" y="4" rx="2"/>` + p("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	"map-pin":            p("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z") + `<circle cx="12" cy="10" r="3"/>`,
	"facebook":           p("M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"),
	"instagram":          `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/>` + p("M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z") + `<line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
	"twitter":            p("M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"),
}
