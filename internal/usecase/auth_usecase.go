// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blindauth/internal/domain/entity"
)

// Operation names reported to metrics and logs.
const (
	OperationRegister    = "register"
	OperationLogin       = "login"
	OperationResetSecret = "reset_secret"
	OperationLogout      = "logout"
	OperationListUsers   = "list_users"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Identifier string
	Secret     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Identifier string
	Secret     string
}

// ResetSecretInput carries the caller's bearer token along with the account
// whose secret is being replaced.
type ResetSecretInput struct {
	Token         string
	Identifier    string
	CurrentSecret string
	NewSecret     string
}

// --- Output DTOs ---

// AuthOutput returns the bearer token issued by register or login.
type AuthOutput struct {
	Token string
}

// ListUsersOutput returns every stored record.
type ListUsersOutput struct {
	Users []*entity.User
	Count int
}

// AuthUsecase defines the account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	ResetSecret(ctx context.Context, input ResetSecretInput) error
	Logout(ctx context.Context, token string) error
	ListUsers(ctx context.Context, token string) (*ListUsersOutput, error)
}
