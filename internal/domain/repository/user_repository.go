// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"blindauth/internal/domain/entity"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/errors"
)

var (
	// ErrUserNotFound is returned when no user matches the identifier hash.
	ErrUserNotFound = errors.New("user not found")

	// ErrIdentifierConflict is returned when an insert violates the unique
	// identifier hash. It carries the CONFLICT kind.
	ErrIdentifierConflict = domainerrors.ErrConflict.WrapMessage("identifier hash already present")
)

// UserRepository is the single-table user store.
type UserRepository interface {
	// Insert persists a new user. The store assigns ID and CreatedAt.
	// Returns ErrIdentifierConflict if identifierHash is already present.
	Insert(ctx context.Context, identifierHash, secretHash string) (*entity.User, error)

	// FindByIdentifierHash returns ErrUserNotFound when absent.
	FindByIdentifierHash(ctx context.Context, identifierHash string) (*entity.User, error)

	// ListAll returns every user in insertion order.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// UpdateSecretHash replaces the secret hash of the matching user.
	// Updating an absent identifier is a no-op.
	UpdateSecretHash(ctx context.Context, identifierHash, secretHash string) error
}

// Migrator is implemented by stores that can create their own schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}
