package view

import (
	"fmt"
	"strconv"

	"artgie-web/internal/category"
	"artgie-web/internal/product"
)

// ProductsState is everything the products page remembers between
// interactions. The zero value is the freshly mounted page.
type ProductsState struct {
	Navbar      NavbarState
	Filter      product.Filter
	Sort        product.SortMode
	ShowFilters bool
}

// Apply returns the state after a. The receiver is never modified.
func (s ProductsState) Apply(a Action) (ProductsState, error) {
	next := s
	if next.Sort == "" {
		next.Sort = product.SortDefault
	}

	if nav, ok := s.Navbar.apply(a); ok {
		next.Navbar = nav
		return next, nil
	}

	switch a.Kind {
	case ActionToggleCategory:
		if a.Value == "" || a.Value == category.All {
			return s, fmt.Errorf("%w: %s needs a category", ErrUnknownAction, a.Kind)
		}
		next.Filter = s.Filter.ToggleCategory(a.Value)
	case ActionSetInStock:
		v, err := strconv.ParseBool(a.Value)
		if err != nil {
			return s, fmt.Errorf("%w: %s", ErrUnknownAction, a)
		}
		next.Filter = s.Filter.SetInStockOnly(v)
	case ActionClearFilters:
		next.Filter = s.Filter.Clear()
	case ActionSort:
		mode, err := product.ParseSortMode(a.Value)
		if err != nil {
			return s, err
		}
		next.Sort = mode
	case ActionOpenFilters:
		next.ShowFilters = true
	case ActionCloseFilters:
		next.ShowFilters = false
	case ActionToggleFilters:
		next.ShowFilters = !s.ShowFilters
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	return next, nil
}

func (s ProductsState) ListOptions() product.ListOptions {
	return product.ListOptions{Filter: s.Filter, Sort: s.Sort}
}
