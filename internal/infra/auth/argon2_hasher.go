// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"blindauth/config"
	"blindauth/internal/domain/service"
	"blindauth/internal/errors"

	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	defaultArgon2Iterations = 1
	defaultArgon2MemoryKiB  = 64 * 1024
	defaultArgon2Threads    = 4
	defaultArgon2SaltLen    = 16
	defaultArgon2KeyLen     = 32

	argon2Prefix = "$argon2id$"

	// Upper bounds accepted when decoding a stored hash.
	maxArgon2MemoryKiB  = 1 << 21
	maxArgon2Iterations = 64
)

// ErrEmptySecret is returned when hashing an empty password.
var ErrEmptySecret = errors.New("secret cannot be empty")

// Argon2Params are the cost parameters used for new hashes.
type Argon2Params struct {
	Iterations uint32
	MemoryKiB  uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultArgon2Params returns the OWASP baseline.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Iterations: defaultArgon2Iterations,
		MemoryKiB:  defaultArgon2MemoryKiB,
		Threads:    defaultArgon2Threads,
		SaltLength: defaultArgon2SaltLen,
		KeyLength:  defaultArgon2KeyLen,
	}
}

// argon2Hasher implements service.SecretHasher using argon2id.
type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher builds the hasher from auth.argon2, filling zero fields with defaults.
func NewArgon2Hasher(cfg *config.Config) service.SecretHasher {
	params := DefaultArgon2Params()
	if cfg != nil && cfg.Auth != nil {
		params = mergeArgon2Params(params, cfg.Auth.Argon2)
	}

	return NewArgon2HasherWithParams(params)
}

// NewArgon2HasherWithParams builds the hasher with explicit parameters.
func NewArgon2HasherWithParams(params Argon2Params) service.SecretHasher {
	return &argon2Hasher{params: params}
}

func mergeArgon2Params(params Argon2Params, override config.Argon2Config) Argon2Params {
	if override.Iterations > 0 {
		params.Iterations = override.Iterations
	}
	if override.MemoryKiB > 0 {
		params.MemoryKiB = override.MemoryKiB
	}
	if override.Threads > 0 {
		params.Threads = override.Threads
	}
	if override.SaltLength > 0 {
		params.SaltLength = override.SaltLength
	}
	if override.KeyLength > 0 {
		params.KeyLength = override.KeyLength
	}

	return params
}

// Hash produces a PHC string:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
func (h *argon2Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate argon2 salt")
	}

	key := argon2.IDKey([]byte(secret), salt, h.params.Iterations, h.params.MemoryKiB, h.params.Threads, h.params.KeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Iterations,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the parameters embedded in encodedHash.
// Any parse failure counts as a mismatch.
func (h *argon2Hasher) Verify(secret, encodedHash string) bool {
	decoded, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(secret), decoded.salt, decoded.iterations, decoded.memoryKiB, decoded.threads, uint32(len(decoded.key)))

	return subtle.ConstantTimeCompare(computed, decoded.key) == 1
}

type decodedArgon2Hash struct {
	memoryKiB  uint32
	iterations uint32
	threads    uint8
	salt       []byte
	key        []byte
}

func decodeArgon2Hash(encodedHash string) (*decodedArgon2Hash, error) {
	if !strings.HasPrefix(encodedHash, argon2Prefix) {
		return nil, errors.New("unsupported hash algorithm")
	}

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, errors.New("invalid hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, errors.Wrap(err, "invalid hash version")
	}
	if version != argon2.Version {
		return nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return nil, errors.Wrap(err, "invalid hash parameters")
	}
	if memory == 0 || iterations == 0 || threads == 0 {
		return nil, errors.New("hash parameters must be positive")
	}
	if memory > maxArgon2MemoryKiB || iterations > maxArgon2Iterations {
		return nil, errors.Errorf("hash parameters m=%d,t=%d out of range", memory, iterations)
	}
	// threads is a uint8 in argon2.IDKey
	if threads > 255 {
		return nil, errors.Errorf("threads value %d exceeds uint8 max", threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, errors.Wrap(err, "invalid hash salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, errors.Wrap(err, "invalid hash key")
	}
	if len(key) == 0 || len(key) > 1<<10 {
		return nil, errors.Errorf("invalid hash key length: %d", len(key))
	}

	return &decodedArgon2Hash{
		memoryKiB:  memory,
		iterations: iterations,
		threads:    uint8(threads),
		salt:       salt,
		key:        key,
	}, nil
}
