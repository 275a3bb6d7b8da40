package product

// Product is a single catalog entry. Catalog records are never mutated after load.
type Product struct {
	ID          int     `yaml:"id" json:"id" validate:"required,gt=0"`
	Name        string  `yaml:"name" json:"name" validate:"required"`
	Description string  `yaml:"description" json:"description" validate:"required"`
	Price       float64 `yaml:"price" json:"price" validate:"gt=0"`
	Category    string  `yaml:"category" json:"category" validate:"required"`
	InStock     bool    `yaml:"in_stock" json:"inStock"`
	Size        string  `yaml:"size" json:"size" validate:"required"`
	Material    string  `yaml:"material" json:"material" validate:"required,oneof=Corroplast Metal"`
	Sides       string  `yaml:"sides" json:"sides" validate:"required,oneof=Single Double"`
	Image       string  `yaml:"image" json:"image" validate:"required"`
}

// Catalog is the document shape of catalog.yaml.
type Catalog struct {
	Categories []string  `yaml:"categories" validate:"required,min=1,unique,dive,required"`
	Products   []Product `yaml:"products" validate:"required,min=1,unique=ID,dive"`
}

type ListOptions struct {
	Filter Filter
	Sort   SortMode
}

type ListResult struct {
	Items      []Product
	TotalCount int
}

// FilterMetadata summarizes the catalog for the filter sidebar and the API.
type FilterMetadata struct {
	Availability AvailabilityData `json:"availability"`
	PriceRange   PriceRangeData   `json:"priceRange"`
}

type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
