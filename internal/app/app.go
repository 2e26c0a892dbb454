// Package app assembles the fx graph shared by the server binaries.
package app

import (
	"context"
	"log/slog"
	"os"

	"blindauth/config"
	"blindauth/internal/delivery"
	"blindauth/internal/delivery/api"
	apimiddleware "blindauth/internal/delivery/api/middleware"
	"blindauth/internal/delivery/api/router/handler"
	"blindauth/internal/domain/service"
	"blindauth/internal/infra/auth"
	logs "blindauth/internal/infra/log"
	"blindauth/internal/infra/metrics"
	"blindauth/internal/infra/persistence"
	"blindauth/internal/infra/session"
	"blindauth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Logger     *slog.Logger
}

// Options returns the full server graph. configOption must provide *config.Config.
func Options(configOption fx.Option) fx.Option {
	return fx.Options(
		configOption,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
}

// New builds the server application with the config loaded from the default locations.
func New() *fx.App {
	return fx.New(Options(fx.Provide(config.New)))
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentifierHasher,
			auth.NewArgon2Hasher,
			newSessionRegistry,
			asSessionRegistry,
			asSessionCounter,
			fx.Annotate(
				metrics.NewRecorder,
				fx.As(new(service.AuthMetrics)),
			),
		),
	)
}

// newSessionRegistry drops every token on shutdown.
func newSessionRegistry(lc fx.Lifecycle, cfg *config.Config) *session.MemoryRegistry {
	registry := session.NewMemoryRegistry(cfg)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			registry.Clear()

			return nil
		},
	})

	return registry
}

func asSessionRegistry(r *session.MemoryRegistry) service.SessionRegistry { return r }

func asSessionCounter(r *session.MemoryRegistry) metrics.SessionCounter { return r }

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
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

// startServer runs every delivery once the other start hooks (store ping and
// migration) have succeeded.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
