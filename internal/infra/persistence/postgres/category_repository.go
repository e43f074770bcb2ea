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

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered alphabetically by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var models []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, toCategoryDomain(m))
	}

	return categories, nil
}

// FindByID retrieves a single category by its id.
func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// Update overwrites an existing category row.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", categoryM.ID).
		Updates(map[string]any{
			"name":  categoryM.Name,
			"photo": categoryM.Photo,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category by id. Missing rows are not an error.
func (repo *categoryRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete category")
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Photo:     data.Photo,
		CreatedAt: data.CreatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		Photo:     data.Photo,
		CreatedAt: data.CreatedAt,
	}
}
