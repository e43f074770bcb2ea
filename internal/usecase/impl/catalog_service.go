package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Ulrich-Yao/website/internal/delivery/context"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Categories ---

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Photo: input.Photo,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("id", category.ID), slog.String("name", category.Name))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id string, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:    id,
		Name:  input.Name,
		Photo: input.Photo,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return srv.GetCategory(ctx, id)
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("id", id))

	return nil
}

// --- Products ---

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		PriceWithVAT: input.PriceWithVAT,
		Category:     input.Category,
		Photo:        input.Photo,
		KeyFeatures:  input.KeyFeatures,
		Available:    input.Available,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("id", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id string, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		PriceWithVAT: input.PriceWithVAT,
		Category:     input.Category,
		Photo:        input.Photo,
		KeyFeatures:  input.KeyFeatures,
		Available:    input.Available,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.GetProduct(ctx, id)
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("id", id))

	return nil
}
