package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	mockRepo "github.com/Ulrich-Yao/website/internal/mocks/repository"
	mockService "github.com/Ulrich-Yao/website/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedTestConfig(username, password string) *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = username
	cfg.Admin.Password = password

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedAdmin_CreatesAccountWithWellKnownID(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "admin").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil)

	var created *entity.User
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	err := SeedAdmin(ctx, userRepo, hasher, seedTestConfig("admin", "s3cret"), discardLogger())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, SeededAdminID, created.ID)
	assert.Equal(t, "admin", created.Username)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
}

func TestSeedAdmin_ExistingAccountIsLeftAlone(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	ctx := context.Background()

	existing := &entity.User{ID: SeededAdminID, Username: "admin", PasswordHash: "$2a$10$old"}
	userRepo.On("FindByUsername", ctx, "admin").Return(existing, nil)

	err := SeedAdmin(ctx, userRepo, hasher, seedTestConfig("admin", "changed-since"), discardLogger())

	// No Hash and no Create: a second boot must not rewrite credentials.
	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestSeedAdmin_EmptyUsernameFallsBackToAdmin(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "admin").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "pw").Return("$2a$10$hash", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := SeedAdmin(ctx, userRepo, hasher, seedTestConfig("", "pw"), discardLogger())

	require.NoError(t, err)
}

func TestSeedAdmin_ConcurrentSeedConflictTolerated(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "admin").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "pw").Return("$2a$10$hash", nil)
	// Another instance inserted the account between lookup and create; the
	// repository reports the duplicate username as a validation failure.
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrValidationFailed.WrapMessage("username already exists"))

	err := SeedAdmin(ctx, userRepo, hasher, seedTestConfig("admin", "pw"), discardLogger())

	require.NoError(t, err)
}

func TestSeedAdmin_CreateFailurePropagates(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "admin").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "pw").Return("$2a$10$hash", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to create user"))

	err := SeedAdmin(ctx, userRepo, hasher, seedTestConfig("admin", "pw"), discardLogger())

	require.Error(t, err)
}

func TestSeedAdmin_LookupFailurePropagates(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "admin").Return(nil, assert.AnError)

	err := SeedAdmin(ctx, userRepo, hasher, seedTestConfig("admin", "pw"), discardLogger())

	require.Error(t, err)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
