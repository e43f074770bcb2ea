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

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository. It returns the
// repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
	}
}
