// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Ulrich-Yao/website/internal/delivery/context"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/domain/service"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the submitted credentials and issues a signed token.
// An unknown username and a wrong password produce the same error, so the
// response never reveals which half was wrong.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("username", user.Username))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}
