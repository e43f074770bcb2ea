package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	mockRepo "github.com/Ulrich-Yao/website/internal/mocks/repository"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gameServiceFixtures struct {
	service      usecase.GameUsecase
	profileRepo  *mockRepo.MockProfileRepository
	questionRepo *mockRepo.MockQuestionRepository
}

func createTestGameService(t *testing.T) gameServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	questionRepo := mockRepo.NewMockQuestionRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewGameService(profileRepo, questionRepo, logger)

	return gameServiceFixtures{
		service:      service,
		profileRepo:  profileRepo,
		questionRepo: questionRepo,
	}
}

func TestGameService_CreateProfile_KeepsPositionZero(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()

	var created *entity.Profile
	fx.profileRepo.On("Create", ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Profile)
		}).
		Return(nil)

	_, err := fx.service.CreateProfile(ctx, usecase.ProfileInput{
		Name:     "Classic",
		Position: 0,
		Active:   true,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Zero(t, created.Position)
	assert.True(t, created.Active)
}

func TestGameService_GetProfile_NotFound(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	fx.profileRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, "missing")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGameService_CreateQuestion_AllOptions(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()

	var created *entity.Question
	fx.questionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Question")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Question)
		}).
		Return(nil)

	input := usecase.QuestionInput{
		Text:       "Which year did the arcade open?",
		OptionOne:  "1998",
		OptionTwo:  "2001",
		OptionFive: "2010",
		Answer:     "2001",
	}

	question, err := fx.service.CreateQuestion(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, input.Text, created.Text)
	assert.Equal(t, input.OptionFive, created.OptionFive)
	assert.Equal(t, input.Answer, created.Answer)
	assert.NotEmpty(t, question.ID)
}

func TestGameService_DeleteQuestion(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	fx.questionRepo.On("Delete", ctx, "q1").Return(nil)

	assert.NoError(t, fx.service.DeleteQuestion(ctx, "q1"))
}
