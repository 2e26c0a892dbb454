package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"blindauth/config"
	"blindauth/internal/domain/service"

	"go.uber.org/fx"
)

// HashIdentifier returns the lowercase hex SHA-256 of salt+normalized+salt,
// where normalized is raw trimmed and lowercased.
func HashIdentifier(raw, salt string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	sum := sha256.Sum256([]byte(salt + normalized + salt))

	return hex.EncodeToString(sum[:])
}

type sha256IdentifierHasher struct {
	salt string
}

// IdentifierHasherParams holds dependencies for the identifier hasher, injected by Fx.
type IdentifierHasherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewIdentifierHasher reads the identifier salt once. When it is not
// configured the built-in fallback is used and a warning is logged.
func NewIdentifierHasher(params IdentifierHasherParams) service.IdentifierHasher {
	salt, configured := params.Config.Auth.ResolveIdentifierSalt()
	if !configured && params.Logger != nil {
		params.Logger.Warn("auth.identifierSalt is not set, falling back to the built-in salt; identifier hashes are not secret",
			slog.String("setting", "auth.identifierSalt"),
			slog.String("env", "AUTH_IDENTIFIERSALT"),
		)
	}

	return NewIdentifierHasherWithSalt(salt)
}

// NewIdentifierHasherWithSalt builds a hasher around an explicit salt.
func NewIdentifierHasherWithSalt(salt string) service.IdentifierHasher {
	return &sha256IdentifierHasher{salt: salt}
}

func (h *sha256IdentifierHasher) HashIdentifier(raw string) string {
	return HashIdentifier(raw, h.salt)
}
