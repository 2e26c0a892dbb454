// Package sqlite implements the user store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"blindauth/config"
	"blindauth/internal/errors"

	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database at database.sqlite.path and closes it on stop.
func New(params Params) (*sql.DB, error) {
	db, err := Open(context.Background(), params.Config.Database.SQLite.Path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing SQLite database")

			return errors.WithStack(db.Close())
		},
	})

	return db, nil
}

// Open opens a SQLite database with WAL journaling and a single writer connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	// One connection serializes writes; SQLite would otherwise return SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()

			return nil, errors.Wrapf(err, "apply %q", pragma)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "ping sqlite database")
	}

	return db, nil
}
