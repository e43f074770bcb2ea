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

// profileRepository implements repository.ProfileRepository using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// List returns all game profiles ordered by their display position.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var models []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Order("position ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(models))
	for _, m := range models {
		profiles = append(profiles, toProfileDomain(m))
	}

	return profiles, nil
}

// FindByID retrieves a single game profile by its id.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new game profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// Update overwrites an existing game profile row. Position zero and a false
// active flag are legitimate values, hence the column map.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profileM.ID).
		Updates(map[string]any{
			"name":        profileM.Name,
			"photo":       profileM.Photo,
			"description": profileM.Description,
			"color":       profileM.Color,
			"play_time":   profileM.PlayTime,
			"additional":  profileM.Additional,
			"can_win":     profileM.CanWin,
			"position":    profileM.Position,
			"active":      profileM.Active,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Delete removes a game profile by id. Missing rows are not an error.
func (repo *profileRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		Name:        data.Name,
		Photo:       data.Photo,
		Description: data.Description,
		Color:       data.Color,
		PlayTime:    data.PlayTime,
		Additional:  data.Additional,
		CanWin:      data.CanWin,
		Position:    data.Position,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		Name:        data.Name,
		Photo:       data.Photo,
		Description: data.Description,
		Color:       data.Color,
		PlayTime:    data.PlayTime,
		Additional:  data.Additional,
		CanWin:      data.CanWin,
		Position:    data.Position,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}
