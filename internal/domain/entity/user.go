// Package entity contains the core business objects of the service.
package entity

import "time"

// User is a registered account. It holds no plaintext personal data: the
// email survives only as a salted digest and the password as an Argon2id hash.
type User struct {
	ID             int64     // Store-assigned, auto-incrementing.
	IdentifierHash string    // Hex SHA-256 of the normalized email, unique across users.
	SecretHash     string    // Self-describing PHC string, see infra/auth.
	CreatedAt      time.Time // Set by the store on insert.
}
