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

// gameService implements the GameUsecase interface.
type gameService struct {
	profileRepo  repository.ProfileRepository
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(
	profileRepo repository.ProfileRepository,
	questionRepo repository.QuestionRepository,
	logger *slog.Logger,
) usecase.GameUsecase {
	return &gameService{
		profileRepo:  profileRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Profiles ---

func (srv *gameService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

func (srv *gameService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

func (srv *gameService) CreateProfile(ctx context.Context, input usecase.ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Photo:       input.Photo,
		Description: input.Description,
		Color:       input.Color,
		PlayTime:    input.PlayTime,
		Additional:  input.Additional,
		CanWin:      input.CanWin,
		Position:    input.Position,
		Active:      input.Active,
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("id", profile.ID), slog.String("name", profile.Name))

	return profile, nil
}

func (srv *gameService) UpdateProfile(ctx context.Context, id string, input usecase.ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		ID:          id,
		Name:        input.Name,
		Photo:       input.Photo,
		Description: input.Description,
		Color:       input.Color,
		PlayTime:    input.PlayTime,
		Additional:  input.Additional,
		CanWin:      input.CanWin,
		Position:    input.Position,
		Active:      input.Active,
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return srv.GetProfile(ctx, id)
}

func (srv *gameService) DeleteProfile(ctx context.Context, id string) error {
	if err := srv.profileRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	srv.log(ctx).Info("Profile deleted", slog.String("id", id))

	return nil
}

// --- Questions ---

func (srv *gameService) ListQuestions(ctx context.Context) ([]*entity.Question, error) {
	questions, err := srv.questionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

func (srv *gameService) GetQuestion(ctx context.Context, id string) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "question not found")
		}

		return nil, errors.Wrap(err, "failed to get question")
	}

	return question, nil
}

func (srv *gameService) CreateQuestion(ctx context.Context, input usecase.QuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		ID:          uuid.NewString(),
		Text:        input.Text,
		OptionOne:   input.OptionOne,
		OptionTwo:   input.OptionTwo,
		OptionThree: input.OptionThree,
		OptionFour:  input.OptionFour,
		OptionFive:  input.OptionFive,
		Answer:      input.Answer,
	}

	if err := srv.questionRepo.Create(ctx, question); err != nil {
		return nil, errors.Wrap(err, "failed to create question")
	}

	srv.log(ctx).Info("Question created", slog.String("id", question.ID))

	return question, nil
}

func (srv *gameService) UpdateQuestion(ctx context.Context, id string, input usecase.QuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		ID:          id,
		Text:        input.Text,
		OptionOne:   input.OptionOne,
		OptionTwo:   input.OptionTwo,
		OptionThree: input.OptionThree,
		OptionFour:  input.OptionFour,
		OptionFive:  input.OptionFive,
		Answer:      input.Answer,
	}

	if err := srv.questionRepo.Update(ctx, question); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "question not found")
		}

		return nil, errors.Wrap(err, "failed to update question")
	}

	return srv.GetQuestion(ctx, id)
}

func (srv *gameService) DeleteQuestion(ctx context.Context, id string) error {
	if err := srv.questionRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete question")
	}

	srv.log(ctx).Info("Question deleted", slog.String("id", id))

	return nil
}
