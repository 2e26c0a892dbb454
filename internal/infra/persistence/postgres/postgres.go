package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"blindauth/config"
	"blindauth/internal/domain/lifecycle"
	"blindauth/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection described by the postgres config block.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("database.driver is postgres but the postgres block is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return Configure(params.Lifecycle, db, params.Logger, params.Config)
}

// Configure applies session settings to db and ties its pool to the fx lifecycle.
func Configure(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	db = db.Session(&gorm.Session{
		// Every write here is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	db.Config.TranslateError = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// monitorDBPool reports connection pool waits. Auth traffic is bursty around
// logins and Argon2 work holds no connection, so waits point at pool sizing.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}

			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("wait_count_delta", waitDelta),
				slog.Duration("wait_duration_delta", waitDurationDelta),
				slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("max_open_conns", cur.MaxOpenConnections),
				slog.Int("open_conns", cur.OpenConnections),
				slog.Int("in_use_conns", cur.InUse),
				slog.Int("idle_conns", cur.Idle),
			)
		}
	}
}
