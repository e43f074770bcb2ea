package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrQuestionNotFound is returned when a quiz question lookup yields no row.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository defines persistence operations for quiz questions.
// List returns questions ordered alphabetically by their text.
type QuestionRepository interface {
	List(ctx context.Context) ([]*entity.Question, error)
	FindByID(ctx context.Context, id string) (*entity.Question, error)
	Create(ctx context.Context, question *entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id string) error
}
