package view

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"artgie-web/internal/carousel"
	"artgie-web/internal/category"
	"artgie-web/internal/product"
)

// Form field names carrying page state between interactions.
const (
	fieldMenuOpen    = "menu_open"
	fieldCategory    = "category"
	fieldInStock     = "in_stock"
	fieldSort        = "sort"
	fieldShowFilters = "show_filters"
	fieldOffset      = "offset"
)

type HiddenField struct {
	Name  string
	Value string
}

func formBool(form url.Values, key string) bool {
	v, _ := strconv.ParseBool(form.Get(key))
	return v
}

func decodeNavbar(form url.Values) NavbarState {
	return NavbarState{MenuOpen: formBool(form, fieldMenuOpen)}
}

func (n NavbarState) hidden() []HiddenField {
	if !n.MenuOpen {
		return nil
	}
	return []HiddenField{{Name: fieldMenuOpen, Value: "true"}}
}

// DecodeProductsState restores the products page state from a submitted
// form. Unknown sort values fall back to the default order, repeated
// categories collapse to one and the All sentinel is dropped.
func DecodeProductsState(form url.Values) ProductsState {
	s := ProductsState{
		Navbar:      decodeNavbar(form),
		ShowFilters: formBool(form, fieldShowFilters),
	}

	for _, c := range form[fieldCategory] {
		c = strings.TrimSpace(c)
		if c != "" && c != category.All && !slices.Contains(s.Filter.Categories, c) {
			s.Filter.Categories = append(s.Filter.Categories, c)
		}
	}
	s.Filter.InStockOnly = formBool(form, fieldInStock)

	mode, err := product.ParseSortMode(form.Get(fieldSort))
	if err != nil {
		mode = product.SortDefault
	}
	s.Sort = mode
	return s
}

// Hidden encodes the state as hidden inputs for the page forms.
func (s ProductsState) Hidden() []HiddenField {
	fields := s.Navbar.hidden()
	for _, c := range s.Filter.Categories {
		fields = append(fields, HiddenField{Name: fieldCategory, Value: c})
	}
	if s.Filter.InStockOnly {
		fields = append(fields, HiddenField{Name: fieldInStock, Value: "true"})
	}
	if s.Sort != "" && s.Sort != product.SortDefault {
		fields = append(fields, HiddenField{Name: fieldSort, Value: string(s.Sort)})
	}
	if s.ShowFilters {
		fields = append(fields, HiddenField{Name: fieldShowFilters, Value: "true"})
	}
	return fields
}

// DecodeHomeState restores the home page state. The carousel offset is
// clamped against the current layout so stale or forged values are harmless.
func DecodeHomeState(form url.Values, layout carousel.Layout, cards int) HomeState {
	offset, _ := strconv.Atoi(form.Get(fieldOffset))
	return HomeState{
		Navbar:   decodeNavbar(form),
		Carousel: layout.Restore(cards, offset),
	}
}

func (s HomeState) Hidden() []HiddenField {
	fields := s.Navbar.hidden()
	if s.Carousel.Offset > 0 {
		fields = append(fields, HiddenField{Name: fieldOffset, Value: strconv.Itoa(s.Carousel.Offset)})
	}
	return fields
}
