package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the color set for one theme. The same hex values back the site's
// utility classes and the terminal catalog.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
}

var palettes = map[Theme]Palette{
	Light: {
		Name:       "light",
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f9fafb"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#4b5563"),
		Accent:     lipgloss.Color("#001f3f"),
		Border:     lipgloss.Color("#e5e7eb"),
		Success:    lipgloss.Color("#15803d"),
		Danger:     lipgloss.Color("#dc2626"),
	},
	Dark: {
		Name:       "dark",
		Background: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#1f2937"),
		Foreground: lipgloss.Color("#f3f4f6"),
		Muted:      lipgloss.Color("#9ca3af"),
		Accent:     lipgloss.Color("#3498db"),
		Border:     lipgloss.Color("#374151"),
		Success:    lipgloss.Color("#4ade80"),
		Danger:     lipgloss.Color("#f87171"),
	},
}

func PaletteFor(t Theme) Palette {
	return palettes[Parse(string(t))]
}

// HTMLClass is the class put on <html> so "dark:" utilities apply.
func (t Theme) HTMLClass() string {
	if t == Dark {
		return "dark"
	}
	return ""
}
