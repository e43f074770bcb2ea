package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/delivery"
	"github.com/Ulrich-Yao/website/internal/delivery/api"
	"github.com/Ulrich-Yao/website/internal/delivery/api/middleware"
	"github.com/Ulrich-Yao/website/internal/delivery/api/router/handler"
	"github.com/Ulrich-Yao/website/internal/infra/auth"
	logs "github.com/Ulrich-Yao/website/internal/infra/log"
	"github.com/Ulrich-Yao/website/internal/infra/persistence/postgres"
	"github.com/Ulrich-Yao/website/internal/infra/storage"
	"github.com/Ulrich-Yao/website/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			warnInsecureDefaults,
			runBootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewNewsRepository,
			postgres.NewLandingRepository,
			postgres.NewProfileRepository,
			postgres.NewQuestionRepository,
			postgres.NewTransactionRepository,
			postgres.NewBootstrap,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewBcryptHasher,
			storage.NewLocalStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewContentService,
			impl.NewGameService,
			impl.NewTransactionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewNewsHandler,
			handler.NewLandingHandler,
			handler.NewProfileHandler,
			handler.NewQuestionHandler,
			handler.NewTransactionHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warnInsecureDefaults calls out configuration that must not reach
// production: the baked-in token secret in particular.
func warnInsecureDefaults(cfg *config.Config, logger *slog.Logger) {
	if cfg.UsingFallbackSecret() {
		logger.Warn("Token secret is the insecure fallback; set AUTH_TOKENSECRET before exposing this server")
	}
}

// runBootstrap migrates the schema and seeds the admin account before the
// server starts accepting traffic.
func runBootstrap(lc fx.Lifecycle, b *postgres.Bootstrap) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return b.Run(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
