package usecase

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CategoryInput carries the writable fields of a category. Updates overwrite
// the whole row; there are no partial edits on the dashboard.
type CategoryInput struct {
	Name  string
	Photo string
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	PriceWithVAT decimal.Decimal
	Category     string
	Photo        string
	KeyFeatures  string
	Available    bool
}

// CatalogUsecase defines business operations over the product catalog:
// categories and the products grouped under them.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
