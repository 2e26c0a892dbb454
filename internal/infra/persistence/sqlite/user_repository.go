package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"blindauth/internal/domain/entity"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/domain/repository"
	"blindauth/internal/errors"
	"blindauth/internal/infra/persistence/sqlite/migrations"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// UserRepository implements repository.UserRepository on SQLite.
type UserRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ repository.Migrator       = (*UserRepository)(nil)
)

// NewUserRepository wraps an open database.
func NewUserRepository(db *sql.DB, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// Migrate applies the embedded schema.
func (r *UserRepository) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, r.db, r.logger)
}

func (r *UserRepository) Insert(ctx context.Context, identifierHash, secretHash string) (*entity.User, error) {
	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (identifier_hash, secret_hash, created_at) VALUES (?, ?, ?)`,
		identifierHash, secretHash, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, errors.WithStack(repository.ErrIdentifierConflict)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "insert user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "read inserted user id")
	}

	return &entity.User{
		ID:             id,
		IdentifierHash: identifierHash,
		SecretHash:     secretHash,
		CreatedAt:      now,
	}, nil
}

func (r *UserRepository) FindByIdentifierHash(ctx context.Context, identifierHash string) (*entity.User, error) {
	user := &entity.User{}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, identifier_hash, secret_hash, created_at FROM users WHERE identifier_hash = ?`,
		identifierHash,
	).Scan(&user.ID, &user.IdentifierHash, &user.SecretHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by identifier hash")
	}

	return user, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, identifier_hash, secret_hash, created_at FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list users")
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user := &entity.User{}
		if err := rows.Scan(&user.ID, &user.IdentifierHash, &user.SecretHash, &user.CreatedAt); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "scan user")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "iterate users")
	}

	return users, nil
}

func (r *UserRepository) UpdateSecretHash(ctx context.Context, identifierHash, secretHash string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE users SET secret_hash = ? WHERE identifier_hash = ?`,
		secretHash, identifierHash,
	); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "update secret hash")
	}

	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
