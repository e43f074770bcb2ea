package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrNewsNotFound is returned when a news lookup yields no row.
var ErrNewsNotFound = errors.New("news not found")

// NewsRepository defines persistence operations for news posts.
// List returns posts ordered newest first.
type NewsRepository interface {
	List(ctx context.Context) ([]*entity.News, error)
	FindByID(ctx context.Context, id string) (*entity.News, error)
	Create(ctx context.Context, news *entity.News) error
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id string) error
}
