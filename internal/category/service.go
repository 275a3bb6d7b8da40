package category

import (
	"context"

	"artgie-web/internal/logger"
	"artgie-web/internal/product"

	"go.uber.org/zap"
)

// Service derives the category set from the product catalog.
type Service interface {
	GetCategories(ctx context.Context) ([]*Category, error)
	Labels(ctx context.Context) ([]string, error)
}

type service struct {
	repo product.Repository
}

func NewService(repo product.Repository) Service {
	return &service{repo: repo}
}

// GetCategories returns every category with the number of products in it.
func (s *service) GetCategories(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategories"),
	)

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to get products", zap.Error(err))
		return nil, err
	}

	labels := Set(products)
	counts := make(map[string]int, len(labels))
	for _, p := range products {
		counts[p.Category]++
	}

	categories := make([]*Category, 0, len(labels))
	for _, l := range labels {
		categories = append(categories, &Category{Name: l, ProductCount: counts[l]})
	}

	log.Debug("GetCategories success", zap.Int("count", len(categories)))
	return categories, nil
}

func (s *service) Labels(ctx context.Context) ([]string, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Set(products), nil
}
