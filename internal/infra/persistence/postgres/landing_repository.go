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

// landingRepository implements repository.LandingRepository using GORM.
type landingRepository struct {
	db *gorm.DB
}

// NewLandingRepository is the constructor for landingRepository.
func NewLandingRepository(db *gorm.DB) repository.LandingRepository {
	return &landingRepository{db: db}
}

// List returns all landing banners ordered alphabetically by title.
func (repo *landingRepository) List(ctx context.Context) ([]*entity.Landing, error) {
	var models []*model.LandingModel
	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list landing banners")
	}

	banners := make([]*entity.Landing, 0, len(models))
	for _, m := range models {
		banners = append(banners, toLandingDomain(m))
	}

	return banners, nil
}

// FindByID retrieves a single landing banner by its id.
func (repo *landingRepository) FindByID(ctx context.Context, id string) (*entity.Landing, error) {
	var landingM model.LandingModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&landingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLandingNotFound
		}

		return nil, errors.Wrap(err, "failed to find landing banner by id")
	}

	return toLandingDomain(&landingM), nil
}

// Create persists a new landing banner.
func (repo *landingRepository) Create(ctx context.Context, landing *entity.Landing) error {
	landingM := fromLandingDomain(landing)

	if err := repo.db.WithContext(ctx).Create(landingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required landing banner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create landing banner")
	}

	return nil
}

// Update overwrites an existing landing banner row.
func (repo *landingRepository) Update(ctx context.Context, landing *entity.Landing) error {
	landingM := fromLandingDomain(landing)

	result := repo.db.WithContext(ctx).
		Model(&model.LandingModel{}).
		Where("id = ?", landingM.ID).
		Updates(map[string]any{
			"title":       landingM.Title,
			"subtitle":    landingM.Subtitle,
			"description": landingM.Description,
			"photo":       landingM.Photo,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update landing banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLandingNotFound
	}

	return nil
}

// Delete removes a landing banner by id. Missing rows are not an error.
func (repo *landingRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LandingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete landing banner")
	}

	return nil
}

// --- Mapper Functions ---

func toLandingDomain(data *model.LandingModel) *entity.Landing {
	if data == nil {
		return nil
	}

	return &entity.Landing{
		ID:          data.ID,
		Title:       data.Title,
		Subtitle:    data.Subtitle,
		Description: data.Description,
		Photo:       data.Photo,
	}
}

func fromLandingDomain(data *entity.Landing) *model.LandingModel {
	if data == nil {
		return nil
	}

	return &model.LandingModel{
		ID:          data.ID,
		Title:       data.Title,
		Subtitle:    data.Subtitle,
		Description: data.Description,
		Photo:       data.Photo,
	}
}
