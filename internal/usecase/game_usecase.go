package usecase

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// --- Input DTOs ---

// ProfileInput carries the writable fields of a game profile card.
type ProfileInput struct {
	Name        string
	Photo       string
	Description string
	Color       string
	PlayTime    string
	Additional  string
	CanWin      string
	Position    int
	Active      bool
}

// QuestionInput carries the writable fields of a quiz question.
type QuestionInput struct {
	Text        string
	OptionOne   string
	OptionTwo   string
	OptionThree string
	OptionFour  string
	OptionFive  string
	Answer      string
}

// GameUsecase defines business operations over the game side of the site:
// profile cards and quiz questions.
type GameUsecase interface {
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
	CreateProfile(ctx context.Context, input ProfileInput) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id string, input ProfileInput) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, id string) error

	ListQuestions(ctx context.Context) ([]*entity.Question, error)
	GetQuestion(ctx context.Context, id string) (*entity.Question, error)
	CreateQuestion(ctx context.Context, input QuestionInput) (*entity.Question, error)
	UpdateQuestion(ctx context.Context, id string, input QuestionInput) (*entity.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}
