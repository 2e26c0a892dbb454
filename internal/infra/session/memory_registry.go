// Package session holds the process-wide registry of active bearer tokens.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"

	"blindauth/config"
	"blindauth/internal/domain/service"
	"blindauth/internal/errors"
)

const defaultTokenBytes = 32

// MemoryRegistry keeps active tokens in memory. Tokens do not expire and are
// lost on restart.
type MemoryRegistry struct {
	mu         sync.RWMutex
	tokens     map[string]struct{}
	tokenBytes int
}

var _ service.SessionRegistry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates an empty registry sized by auth.tokenBytes.
func NewMemoryRegistry(cfg *config.Config) *MemoryRegistry {
	tokenBytes := defaultTokenBytes
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TokenBytes > 0 {
		tokenBytes = cfg.Auth.TokenBytes
	}

	return &MemoryRegistry{
		tokens:     make(map[string]struct{}),
		tokenBytes: tokenBytes,
	}
}

// GenerateToken returns n random bytes encoded as unpadded base64url.
func GenerateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for session token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Issue generates a token outside the lock and then records it.
func (r *MemoryRegistry) Issue(_ context.Context) (string, error) {
	token, err := GenerateToken(r.tokenBytes)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()

	return token, nil
}

func (r *MemoryRegistry) Validate(_ context.Context, token string) bool {
	if token == "" {
		return false
	}

	r.mu.RLock()
	_, ok := r.tokens[token]
	r.mu.RUnlock()

	return ok
}

func (r *MemoryRegistry) Revoke(_ context.Context, token string) bool {
	if token == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token]; !ok {
		return false
	}
	delete(r.tokens, token)

	return true
}

// Len reports the number of active tokens.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tokens)
}

// Clear drops every token. It runs on shutdown so nothing outlives the process.
func (r *MemoryRegistry) Clear() {
	r.mu.Lock()
	r.tokens = make(map[string]struct{})
	r.mu.Unlock()
}
