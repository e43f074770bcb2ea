package postgres

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns all products ordered alphabetically by name.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var models []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products, nil
}

// FindByID retrieves a single product by its id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt

	return nil
}

// Update overwrites an existing product row. Booleans go through a column
// map so a false value is written instead of skipped.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":           productM.Name,
			"description":    productM.Description,
			"price":          productM.Price,
			"price_with_vat": productM.PriceWithVAT,
			"category":       productM.Category,
			"photo":          productM.Photo,
			"key_features":   productM.KeyFeatures,
			"available":      productM.Available,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id. Missing rows are not an error.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		PriceWithVAT: data.PriceWithVAT,
		Category:     data.Category,
		Photo:        data.Photo,
		KeyFeatures:  data.KeyFeatures,
		Available:    data.Available,
		CreatedAt:    data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		PriceWithVAT: data.PriceWithVAT,
		Category:     data.Category,
		Photo:        data.Photo,
		KeyFeatures:  data.KeyFeatures,
		Available:    data.Available,
		CreatedAt:    data.CreatedAt,
	}
}
