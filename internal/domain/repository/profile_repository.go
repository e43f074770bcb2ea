package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrProfileNotFound is returned when a game profile lookup yields no row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations for game profiles.
// List returns profiles ordered by their display position.
type ProfileRepository interface {
	List(ctx context.Context) ([]*entity.Profile, error)
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id string) error
}
