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

// newsRepository implements repository.NewsRepository using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

// List returns all news posts ordered newest first.
func (repo *newsRepository) List(ctx context.Context) ([]*entity.News, error) {
	var models []*model.NewsModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	news := make([]*entity.News, 0, len(models))
	for _, m := range models {
		news = append(news, toNewsDomain(m))
	}

	return news, nil
}

// FindByID retrieves a single news post by its id.
func (repo *newsRepository) FindByID(ctx context.Context, id string) (*entity.News, error) {
	var newsM model.NewsModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&newsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news by id")
	}

	return toNewsDomain(&newsM), nil
}

// Create persists a new news post.
func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	newsM := fromNewsDomain(news)

	if err := repo.db.WithContext(ctx).Create(newsM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required news information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create news")
	}

	news.CreatedAt = newsM.CreatedAt

	return nil
}

// Update overwrites an existing news row, including its visibility flags.
func (repo *newsRepository) Update(ctx context.Context, news *entity.News) error {
	newsM := fromNewsDomain(news)

	result := repo.db.WithContext(ctx).
		Model(&model.NewsModel{}).
		Where("id = ?", newsM.ID).
		Updates(map[string]any{
			"author":   newsM.Author,
			"title":    newsM.Title,
			"subtitle": newsM.Subtitle,
			"post":     newsM.Body,
			"photo":    newsM.Photo,
			"visible":  newsM.Visible,
			"movie":    newsM.Movie,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

// Delete removes a news post by id. Missing rows are not an error.
func (repo *newsRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NewsModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete news")
	}

	return nil
}

// --- Mapper Functions ---

func toNewsDomain(data *model.NewsModel) *entity.News {
	if data == nil {
		return nil
	}

	return &entity.News{
		ID:        data.ID,
		Author:    data.Author,
		Title:     data.Title,
		Subtitle:  data.Subtitle,
		Body:      data.Body,
		Photo:     data.Photo,
		Visible:   data.Visible,
		Movie:     data.Movie,
		CreatedAt: data.CreatedAt,
	}
}

func fromNewsDomain(data *entity.News) *model.NewsModel {
	if data == nil {
		return nil
	}

	return &model.NewsModel{
		ID:        data.ID,
		Author:    data.Author,
		Title:     data.Title,
		Subtitle:  data.Subtitle,
		Body:      data.Body,
		Photo:     data.Photo,
		Visible:   data.Visible,
		Movie:     data.Movie,
		CreatedAt: data.CreatedAt,
	}
}
