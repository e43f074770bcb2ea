package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrLandingNotFound is returned when a landing banner lookup yields no row.
var ErrLandingNotFound = errors.New("landing banner not found")

// LandingRepository defines persistence operations for landing banners.
// List returns banners ordered alphabetically by title.
type LandingRepository interface {
	List(ctx context.Context) ([]*entity.Landing, error)
	FindByID(ctx context.Context, id string) (*entity.Landing, error)
	Create(ctx context.Context, landing *entity.Landing) error
	Update(ctx context.Context, landing *entity.Landing) error
	Delete(ctx context.Context, id string) error
}
