package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	mockRepo "github.com/Ulrich-Yao/website/internal/mocks/repository"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCatalogService(categoryRepo, productRepo, logger)

	return catalogServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Category{
		{ID: "c1", Name: "Accessories"},
		{ID: "c2", Name: "Consoles"},
	}
	fx.categoryRepo.On("List", ctx).Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCatalogService_CreateCategory_GeneratesID(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := fx.service.CreateCategory(ctx, usecase.CategoryInput{Name: "Consoles", Photo: "/uploads/x.png"})

	require.NoError(t, err)
	assert.Equal(t, "Consoles", category.Name)

	// The service assigns the identifier; it must be a valid UUID.
	_, parseErr := uuid.Parse(category.ID)
	assert.NoError(t, parseErr)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetCategory(ctx, "missing")

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.On("Update", ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryNotFound)

	category, err := fx.service.UpdateCategory(ctx, "missing", usecase.CategoryInput{Name: "Renamed"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_DeleteCategory_MissingIDIsNoop(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.On("Delete", ctx, "already-gone").Return(nil)

	assert.NoError(t, fx.service.DeleteCategory(ctx, "already-gone"))
}

func TestCatalogService_CreateProduct_CarriesPrices(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	var created *entity.Product
	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Product)
		}).
		Return(nil)

	input := usecase.ProductInput{
		Name:         "Arcade Stick",
		Price:        decimal.RequireFromString("59.99"),
		PriceWithVAT: decimal.RequireFromString("71.99"),
		Category:     "Accessories",
		Available:    true,
	}

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.Price.Equal(input.Price))
	assert.True(t, created.PriceWithVAT.Equal(input.PriceWithVAT))
	assert.Equal(t, product, created)
}

func TestCatalogService_UpdateProduct_ReloadsRow(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stored := &entity.Product{ID: "p1", Name: "Arcade Stick", Available: false}

	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.productRepo.On("FindByID", ctx, "p1").Return(stored, nil)

	product, err := fx.service.UpdateProduct(ctx, "p1", usecase.ProductInput{Name: "Arcade Stick"})

	require.NoError(t, err)
	assert.Equal(t, stored, product)
}
