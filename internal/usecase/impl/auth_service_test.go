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
	mockService "github.com/Ulrich-Yao/website/internal/mocks/service"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuthService(userRepo, hasher, tokenService, logger)

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: "$2a$10$stored-hash",
	}

	fx.userRepo.On("FindByUsername", ctx, "admin").Return(user, nil)
	fx.hasher.On("Check", "admin123", user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user).Return("signed.jwt.token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByUsername", ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "nobody", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: "$2a$10$stored-hash",
	}

	fx.userRepo.On("FindByUsername", ctx, "admin").Return(user, nil)
	fx.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, out)
	// A wrong password must be indistinguishable from an unknown username.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbErr := errors.New("connection refused")
	fx.userRepo.On("FindByUsername", ctx, "admin").Return(nil, dbErr)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "admin123"})

	require.Error(t, err)
	assert.Nil(t, out)
	// Infrastructure failures must not collapse into a credentials error.
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: "$2a$10$stored-hash",
	}

	fx.userRepo.On("FindByUsername", ctx, "admin").Return(user, nil)
	fx.hasher.On("Check", "admin123", user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user).Return("", errors.New("signing failed"))

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "admin123"})

	require.Error(t, err)
	assert.Nil(t, out)
}
