// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// IdentifierHasher turns an email into its deterministic lookup key.
// The same normalized input always yields the same hash for a given salt.
type IdentifierHasher interface {
	HashIdentifier(raw string) string
}

// SecretHasher hashes and verifies passwords.
// This abstracts the underlying algorithm (Argon2id), keeping the domain pure.
type SecretHasher interface {
	// Hash produces a randomly salted, self-describing hash.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches encodedHash. A malformed hash is a mismatch.
	Verify(secret, encodedHash string) bool
}
