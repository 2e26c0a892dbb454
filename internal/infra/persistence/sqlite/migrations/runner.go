// Package migrations applies the embedded SQLite schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"blindauth/internal/errors"
)

//go:embed *.sql
var FS embed.FS

// Run applies every migration not yet recorded in schema_migrations, in
// filename order, each in its own transaction.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return errors.Wrap(err, "ensure schema_migrations table")
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	files, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, filename := range files {
		if applied[filename] {
			continue
		}

		if err := apply(ctx, db, filename); err != nil {
			return errors.Wrapf(err, "apply migration %s", filename)
		}
		logger.InfoContext(ctx, "Migration applied", slog.String("file", filename))
	}

	return nil
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, errors.Wrap(err, "query applied migrations")
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, errors.Wrap(err, "scan applied migration")
		}
		applied[filename] = true
	}

	return applied, errors.WithStack(rows.Err())
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "list migrations")
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}

func apply(ctx context.Context, db *sql.DB, filename string) error {
	content, err := fs.ReadFile(FS, filename)
	if err != nil {
		return errors.Wrap(err, "read migration")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return errors.Wrap(err, "execute migration")
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", filename); err != nil {
		return errors.Wrap(err, "record migration")
	}

	return errors.WithStack(tx.Commit())
}
