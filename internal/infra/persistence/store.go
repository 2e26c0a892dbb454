// Package persistence selects the user store named by database.driver.
package persistence

import (
	"context"
	"log/slog"

	"blindauth/config"
	"blindauth/internal/domain/lifecycle"
	"blindauth/internal/domain/repository"
	"blindauth/internal/errors"
	"blindauth/internal/infra/persistence/postgres"
	"blindauth/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// StoreParams defines the required parameters
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store is the selected user store together with its schema migrator.
type Store interface {
	repository.UserRepository
	repository.Migrator
}

// OpenStore builds the store for the configured driver without running migrations.
func OpenStore(params StoreParams) (Store, error) {
	switch params.Config.Database.Driver {
	case config.DriverSQLite, "":
		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return sqlite.NewUserRepository(db, params.Logger), nil
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", params.Config.Database.Driver)
	}
}

// NewUserRepository provides the user store and, when database.autoMigrate is
// set, migrates its schema on start.
func NewUserRepository(params StoreParams) (repository.UserRepository, error) {
	store, err := OpenStore(params)
	if err != nil {
		return nil, err
	}

	if params.Config.Database.AutoMigrate {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				params.Logger.Info("Migrating user store", slog.String("driver", params.Config.Database.Driver))

				return errors.Wrap(store.Migrate(ctx), "migrate user store")
			},
		})
	}

	return store, nil
}
