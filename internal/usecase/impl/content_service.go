package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Ulrich-Yao/website/internal/delivery/context"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	newsRepo    repository.NewsRepository
	landingRepo repository.LandingRepository
	logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	newsRepo repository.NewsRepository,
	landingRepo repository.LandingRepository,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		newsRepo:    newsRepo,
		landingRepo: landingRepo,
		logger:      logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- News ---

func (srv *contentService) ListNews(ctx context.Context) ([]*entity.News, error) {
	news, err := srv.newsRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return news, nil
}

func (srv *contentService) GetNews(ctx context.Context, id string) (*entity.News, error) {
	news, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "news not found")
		}

		return nil, errors.Wrap(err, "failed to get news")
	}

	return news, nil
}

func (srv *contentService) CreateNews(ctx context.Context, input usecase.NewsInput) (*entity.News, error) {
	news := &entity.News{
		ID:       uuid.NewString(),
		Author:   input.Author,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Body:     input.Body,
		Photo:    input.Photo,
		Visible:  input.Visible,
		Movie:    input.Movie,
	}

	if err := srv.newsRepo.Create(ctx, news); err != nil {
		return nil, errors.Wrap(err, "failed to create news")
	}

	srv.log(ctx).Info("News created", slog.String("id", news.ID), slog.String("title", news.Title))

	return news, nil
}

func (srv *contentService) UpdateNews(ctx context.Context, id string, input usecase.NewsInput) (*entity.News, error) {
	news := &entity.News{
		ID:       id,
		Author:   input.Author,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Body:     input.Body,
		Photo:    input.Photo,
		Visible:  input.Visible,
		Movie:    input.Movie,
	}

	if err := srv.newsRepo.Update(ctx, news); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "news not found")
		}

		return nil, errors.Wrap(err, "failed to update news")
	}

	return srv.GetNews(ctx, id)
}

func (srv *contentService) DeleteNews(ctx context.Context, id string) error {
	if err := srv.newsRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete news")
	}

	srv.log(ctx).Info("News deleted", slog.String("id", id))

	return nil
}

// --- Landing banners ---

func (srv *contentService) ListLanding(ctx context.Context) ([]*entity.Landing, error) {
	banners, err := srv.landingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list landing banners")
	}

	return banners, nil
}

func (srv *contentService) GetLanding(ctx context.Context, id string) (*entity.Landing, error) {
	banner, err := srv.landingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLandingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "landing banner not found")
		}

		return nil, errors.Wrap(err, "failed to get landing banner")
	}

	return banner, nil
}

func (srv *contentService) CreateLanding(ctx context.Context, input usecase.LandingInput) (*entity.Landing, error) {
	banner := &entity.Landing{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Photo:       input.Photo,
	}

	if err := srv.landingRepo.Create(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to create landing banner")
	}

	srv.log(ctx).Info("Landing banner created", slog.String("id", banner.ID), slog.String("title", banner.Title))

	return banner, nil
}

func (srv *contentService) UpdateLanding(ctx context.Context, id string, input usecase.LandingInput) (*entity.Landing, error) {
	banner := &entity.Landing{
		ID:          id,
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Photo:       input.Photo,
	}

	if err := srv.landingRepo.Update(ctx, banner); err != nil {
		if errors.Is(err, repository.ErrLandingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "landing banner not found")
		}

		return nil, errors.Wrap(err, "failed to update landing banner")
	}

	return srv.GetLanding(ctx, id)
}

func (srv *contentService) DeleteLanding(ctx context.Context, id string) error {
	if err := srv.landingRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete landing banner")
	}

	srv.log(ctx).Info("Landing banner deleted", slog.String("id", id))

	return nil
}
