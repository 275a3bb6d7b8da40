package product

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Repository is the read-only catalog data provider.
type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
}

type repository struct {
	products []Product
	byID     map[int]int
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// NewStaticRepository serves the catalog compiled into the binary.
func NewStaticRepository() (Repository, error) {
	return NewRepositoryFromYAML(embeddedCatalog)
}

// NewRepositoryFromYAML decodes and validates a catalog document.
func NewRepositoryFromYAML(data []byte) (Repository, error) {
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	r := &repository{
		products: catalog.Products,
		byID:     make(map[int]int, len(catalog.Products)),
	}
	for i, p := range catalog.Products {
		r.byID[p.ID] = i
	}
	return r, nil
}

// ParseCatalog decodes a catalog document and checks that every record is
// complete, IDs are unique and every category is declared.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	if err := validatorInstance().Struct(catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	for _, p := range catalog.Products {
		if !slices.Contains(catalog.Categories, p.Category) {
			return nil, fmt.Errorf("%w: product %d has undeclared category %q", ErrInvalidCatalog, p.ID, p.Category)
		}
	}

	return &catalog, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.products), nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
