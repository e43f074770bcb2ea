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

// questionRepository implements repository.QuestionRepository using GORM.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// List returns all quiz questions ordered alphabetically by their text.
func (repo *questionRepository) List(ctx context.Context) ([]*entity.Question, error) {
	var models []*model.QuestionModel
	if err := repo.db.WithContext(ctx).
		Order("question ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	questions := make([]*entity.Question, 0, len(models))
	for _, m := range models {
		questions = append(questions, toQuestionDomain(m))
	}

	return questions, nil
}

// FindByID retrieves a single quiz question by its id.
func (repo *questionRepository) FindByID(ctx context.Context, id string) (*entity.Question, error) {
	var questionM model.QuestionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question by id")
	}

	return toQuestionDomain(&questionM), nil
}

// Create persists a new quiz question.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required question information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	return nil
}

// Update overwrites an existing quiz question row.
func (repo *questionRepository) Update(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", questionM.ID).
		Updates(map[string]any{
			"question":     questionM.Text,
			"option_one":   questionM.OptionOne,
			"option_two":   questionM.OptionTwo,
			"option_three": questionM.OptionThree,
			"option_four":  questionM.OptionFour,
			"option_five":  questionM.OptionFive,
			"answer":       questionM.Answer,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// Delete removes a quiz question by id. Missing rows are not an error.
func (repo *questionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuestionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete question")
	}

	return nil
}

// --- Mapper Functions ---

func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:          data.ID,
		Text:        data.Text,
		OptionOne:   data.OptionOne,
		OptionTwo:   data.OptionTwo,
		OptionThree: data.OptionThree,
		OptionFour:  data.OptionFour,
		OptionFive:  data.OptionFive,
		Answer:      data.Answer,
	}
}

func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:          data.ID,
		Text:        data.Text,
		OptionOne:   data.OptionOne,
		OptionTwo:   data.OptionTwo,
		OptionThree: data.OptionThree,
		OptionFour:  data.OptionFour,
		OptionFive:  data.OptionFive,
		Answer:      data.Answer,
	}
}
