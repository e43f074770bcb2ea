package usecase

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// --- Input DTOs ---

// NewsInput carries the writable fields of a news post.
type NewsInput struct {
	Author   string
	Title    string
	Subtitle string
	Body     string
	Photo    string
	Visible  bool
	Movie    bool
}

// LandingInput carries the writable fields of a landing banner.
type LandingInput struct {
	Title       string
	Subtitle    string
	Description string
	Photo       string
}

// ContentUsecase defines business operations over editorial content: the
// news feed and the landing page banners.
type ContentUsecase interface {
	ListNews(ctx context.Context) ([]*entity.News, error)
	GetNews(ctx context.Context, id string) (*entity.News, error)
	CreateNews(ctx context.Context, input NewsInput) (*entity.News, error)
	UpdateNews(ctx context.Context, id string, input NewsInput) (*entity.News, error)
	DeleteNews(ctx context.Context, id string) error

	ListLanding(ctx context.Context) ([]*entity.Landing, error)
	GetLanding(ctx context.Context, id string) (*entity.Landing, error)
	CreateLanding(ctx context.Context, input LandingInput) (*entity.Landing, error)
	UpdateLanding(ctx context.Context, id string, input LandingInput) (*entity.Landing, error)
	DeleteLanding(ctx context.Context, id string) error
}
