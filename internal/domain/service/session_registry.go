package service

import "context"

// SessionRegistry tracks the set of currently valid bearer tokens.
// Tokens are opaque and are not bound to a user.
type SessionRegistry interface {
	// Issue creates a new token and marks it active.
	Issue(ctx context.Context) (string, error)

	// Validate reports whether token is active.
	Validate(ctx context.Context, token string) bool

	// Revoke deactivates token and reports whether it was active.
	Revoke(ctx context.Context, token string) bool
}
