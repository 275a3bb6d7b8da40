package product

import "slices"

// Filter is the category + availability selection of the products page.
// The zero value selects everything. Methods never mutate the receiver.
type Filter struct {
	Categories  []string `json:"categories"`
	InStockOnly bool     `json:"inStockOnly"`
}

// Matches reports whether p passes both predicates.
func (f Filter) Matches(p Product) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	return true
}

// Apply returns the matching products in their original order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) HasCategory(category string) bool {
	return slices.Contains(f.Categories, category)
}

// ToggleCategory adds category when absent and removes it when present.
func (f Filter) ToggleCategory(category string) Filter {
	next := Filter{InStockOnly: f.InStockOnly}
	if i := slices.Index(f.Categories, category); i >= 0 {
		next.Categories = slices.Delete(slices.Clone(f.Categories), i, i+1)
		if len(next.Categories) == 0 {
			next.Categories = nil
		}
		return next
	}
	next.Categories = append(slices.Clone(f.Categories), category)
	return next
}

func (f Filter) SetInStockOnly(v bool) Filter {
	return Filter{Categories: slices.Clone(f.Categories), InStockOnly: v}
}

// Clear resets the selection to its initial empty state.
func (f Filter) Clear() Filter {
	return Filter{}
}

// ActiveCount is the number shown on the mobile "Filters" badge.
func (f Filter) ActiveCount() int {
	n := len(f.Categories)
	if f.InStockOnly {
		n++
	}
	return n
}

func (f Filter) IsEmpty() bool {
	return f.ActiveCount() == 0
}
