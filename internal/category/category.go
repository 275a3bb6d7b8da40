package category

import (
	"slices"

	"artgie-web/internal/product"
)

// Set returns the distinct category labels of products in first-appearance order.
func Set(products []product.Product) []string {
	labels := make([]string, 0)
	for _, p := range products {
		if !slices.Contains(labels, p.Category) {
			labels = append(labels, p.Category)
		}
	}
	return labels
}

// WithAll prepends the All sentinel for display.
func WithAll(labels []string) []string {
	return append([]string{All}, labels...)
}

// Checklist drops the All sentinel so only real categories become checkboxes.
func Checklist(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != All {
			out = append(out, l)
		}
	}
	return out
}
