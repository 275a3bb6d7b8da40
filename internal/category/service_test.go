package category

import (
	"context"
	"errors"
	"testing"

	"artgie-web/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

var products = []product.Product{
	{ID: 1, Category: "Yard"},
	{ID: 2, Category: "Banner"},
	{ID: 3, Category: "Yard"},
	{ID: 4, Category: "Safety"},
}

// --- Tests ---

func TestSet(t *testing.T) {
	assert.Equal(t, []string{"Yard", "Banner", "Safety"}, Set(products))
	assert.Empty(t, Set(nil))
}

func TestWithAllAndChecklist(t *testing.T) {
	labels := Set(products)
	display := WithAll(labels)

	assert.Equal(t, All, display[0])
	assert.Equal(t, labels, display[1:])
	assert.Equal(t, labels, Checklist(display))
	assert.NotContains(t, Checklist(display), All)
}

func TestService_GetCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewService(mockRepo)
		mockRepo.On("GetAll", ctx).Return(products, nil)

		res, err := svc.GetCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*Category{
			{Name: "Yard", ProductCount: 2},
			{Name: "Banner", ProductCount: 1},
			{Name: "Safety", ProductCount: 1},
		}, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewService(mockRepo)
		mockRepo.On("GetAll", ctx).Return(nil, errors.New("boom"))

		_, err := svc.GetCategories(ctx)
		assert.Error(t, err)
	})
}

func TestService_Labels(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	svc := NewService(mockRepo)
	mockRepo.On("GetAll", ctx).Return(products, nil)

	labels, err := svc.Labels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yard", "Banner", "Safety"}, labels)
}

func TestService_StaticCatalogCategoriesAreDeclared(t *testing.T) {
	repo, err := product.NewStaticRepository()
	require.NoError(t, err)

	labels, err := NewService(repo).Labels(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, labels)
	assert.NotContains(t, labels, All)
}
