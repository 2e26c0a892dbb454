package main

import (
	"context"
	"time"

	"blindauth/config"
	"blindauth/internal/errors"
	logs "blindauth/internal/infra/log"
	"blindauth/internal/infra/persistence"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const migrateTimeout = time.Minute

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users table",
		Long:  `Apply the schema for the configured database.driver and exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			cmd.Printf("Migrating %s store...\n", cfg.Database.Driver)
			if err := runMigrate(cmd.Context(), cfg); err != nil {
				return err
			}
			cmd.Println("Migrations completed successfully")

			return nil
		},
	}
}

// runMigrate opens the store, migrates it in a start hook and shuts down again.
func runMigrate(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			persistence.OpenStore,
		),
		fx.Invoke(func(lc fx.Lifecycle, store persistence.Store) {
			lc.Append(fx.Hook{
				OnStart: store.Migrate,
			})
		}),
	)

	startCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "migrate store")
	}

	return errors.Wrap(app.Stop(context.Background()), "close store")
}
