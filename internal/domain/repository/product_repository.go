package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrProductNotFound is returned when a product lookup yields no row.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for catalog products.
// List returns products ordered alphabetically by name.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
