package postgres

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/domain/service"
	"github.com/Ulrich-Yao/website/internal/errors"
	"github.com/Ulrich-Yao/website/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// SeededAdminID is the well-known id of the administrator account created at
// first boot.
const SeededAdminID = "admin-1"

// Bootstrap owns one-time store initialization: idempotent schema creation
// followed by seeding the default administrator. A real mutex guards the
// whole sequence so concurrent callers cannot observe a half-built schema,
// and a done flag makes repeat calls no-ops.
type Bootstrap struct {
	mu   sync.Mutex
	done bool

	db       *gorm.DB
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	cfg      *config.Config
	logger   *slog.Logger
}

// BootstrapParams holds dependencies for Bootstrap, injected by Fx.
type BootstrapParams struct {
	fx.In

	DB       *gorm.DB
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewBootstrap is the constructor for Bootstrap.
func NewBootstrap(params BootstrapParams) *Bootstrap {
	return &Bootstrap{
		db:       params.DB,
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

// Run migrates the schema and seeds the admin account. Safe to call more
// than once; the second call returns immediately.
func (b *Bootstrap) Run(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done {
		return nil
	}

	b.logger.Info("Initializing database schema")

	if err := b.db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.NewsModel{},
		&model.LandingModel{},
		&model.ProfileModel{},
		&model.QuestionModel{},
		&model.TransactionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	if err := SeedAdmin(ctx, b.userRepo, b.hasher, b.cfg, b.logger); err != nil {
		return err
	}

	b.done = true

	return nil
}

// SeedAdmin creates the default administrator account if it does not exist
// yet. The insert is idempotent: an already-present username leaves the
// stored credentials untouched.
func SeedAdmin(
	ctx context.Context,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) error {
	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		logger.Debug("Admin account already seeded", slog.String("username", username))

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up admin account")
	}

	hash, err := hasher.Hash(cfg.Admin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		ID:           SeededAdminID,
		Username:     username,
		PasswordHash: hash,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// The repository reports a duplicate username as a validation
		// failure. Here that means a concurrent bootstrap won the race;
		// the account existing is the desired end state either way.
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil
		}

		return errors.Wrap(err, "failed to seed admin account")
	}

	if cfg.Admin.Password == "admin123" {
		logger.Warn("Admin account uses the well-known default password; change it",
			slog.String("username", username))
	}

	logger.Info("Seeded default admin account", slog.String("username", username))

	return nil
}
