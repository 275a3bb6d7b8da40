package product

import (
	"context"

	"artgie-web/internal/logger"
	"artgie-web/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Featured(ctx context.Context, limit int) ([]Product, error)
	FilterMetadata(ctx context.Context) (*FilterMetadata, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List runs the catalog through the filter and then the sort.
func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	timer := metrics.StartTimer()

	if opts.Sort == "" {
		opts.Sort = SortDefault
	}
	if _, err := ParseSortMode(string(opts.Sort)); err != nil {
		log.Warn("rejected sort mode", zap.String("sort", string(opts.Sort)))
		return nil, err
	}

	log.Debug("list products requested",
		zap.Strings("categories", opts.Filter.Categories),
		zap.Bool("in_stock_only", opts.Filter.InStockOnly),
		zap.String("sort", string(opts.Sort)),
	)

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch catalog", zap.Error(err))
		return nil, err
	}

	items := Sort(opts.Filter.Apply(products), opts.Sort)

	log.Debug("list products success",
		zap.Int("count", len(items)),
		zap.Int("catalog_size", len(products)),
		zap.Duration("duration", timer.Duration()),
	)

	return &ListResult{
		Items:      items,
		TotalCount: len(items),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Debug("product lookup failed",
			zap.String("layer", "service"),
			zap.Int("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

// Featured returns the first limit products in catalog order for the home carousel.
// A non-positive limit returns the whole catalog.
func (s *service) Featured(ctx context.Context, limit int) ([]Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch featured products",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}

	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products, nil
}

func (s *service) FilterMetadata(ctx context.Context) (*FilterMetadata, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	meta := &FilterMetadata{}
	for i, p := range products {
		if p.InStock {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}

		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}
	return meta, nil
}
