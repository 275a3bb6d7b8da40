package category

// All is the display-only sentinel shown ahead of the real categories.
// It is never part of a filter selection.
const All = "All"

type Category struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}
