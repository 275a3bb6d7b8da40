package product

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortMode string

const (
	SortDefault   SortMode = "default"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

var sortLabels = map[SortMode]string{
	SortDefault:   "Default",
	SortNameAsc:   "Name: A-Z",
	SortNameDesc:  "Name: Z-A",
	SortPriceAsc:  "Price: Low to High",
	SortPriceDesc: "Price: High to Low",
}

// SortModes lists the modes in the order the sort control shows them.
func SortModes() []SortMode {
	return []SortMode{SortDefault, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}
}

// ParseSortMode accepts the wire names above. Empty input means SortDefault.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortDefault, nil
	}
	m := SortMode(s)
	if _, ok := sortLabels[m]; !ok {
		return SortDefault, fmt.Errorf("%w: %q", ErrInvalidSortMode, s)
	}
	return m, nil
}

func (m SortMode) Label() string {
	if l, ok := sortLabels[m]; ok {
		return l
	}
	return sortLabels[SortDefault]
}

func (m SortMode) String() string { return string(m) }

// Sort returns a stably sorted copy of products. Names are compared with
// English collation, prices numerically. SortDefault keeps the input order.
func Sort(products []Product, mode SortMode) []Product {
	out := slices.Clone(products)
	if out == nil {
		out = []Product{}
	}

	switch mode {
	case SortNameAsc, SortNameDesc:
		// collate.Collator keeps internal buffers, so each call gets its own.
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b Product) int {
			if mode == SortNameDesc {
				return c.CompareString(b.Name, a.Name)
			}
			return c.CompareString(a.Name, b.Name)
		})
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}

	return out
}
