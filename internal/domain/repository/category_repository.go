package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category lookup yields no row.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for categories.
// List returns categories ordered alphabetically by name.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by id. Deleting an id that does not exist
	// is not an error.
	Delete(ctx context.Context, id string) error
}
