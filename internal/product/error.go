package product

import "errors"

var (
	// -- Lookup --
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")

	// -- Query input --
	ErrInvalidSortMode = errors.New("invalid sort mode")

	// -- Catalog source --
	ErrInvalidCatalog = errors.New("invalid catalog")
)
