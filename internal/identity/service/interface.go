// Package service provides technical services for identity operations.
//
// This package implements password hashing and signed-token issuance/verification
// using industry-standard cryptographic practices.
package service

import "time"

// PasswordService defines operations for password hashing and verification.
// Implementations must use an adaptive, salted, one-way algorithm
// (e.g., bcrypt, argon2).
type PasswordService interface {
	// HashPassword hashes a plaintext password. Each call produces a fresh
	// salt, so hashing the same password twice yields different outputs.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plaintext password against a stored hash.
	// Returns true if the password matches, false otherwise.
	// The comparison is constant-time to prevent timing attacks.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// TokenService defines operations for building and verifying signed
// authentication tokens. Tokens are stateless: nothing is persisted, and the
// only way a token becomes invalid is expiry or a signature that doesn't
// verify under the current signing key.
type TokenService interface {
	// Issue builds a signed token asserting the given subject, with issued-at
	// set to now and expiry of now plus the configured TTL.
	Issue(subject string, now time.Time) (string, error)

	// Verify parses and verifies a token string against the signing key,
	// evaluating expiry relative to now. Returns the claims on success, or
	// one of the domain token errors (malformed, bad signature, expired).
	Verify(tokenString string, now time.Time) (*Claims, error)

	// TTL returns the configured token lifetime. The expires_in value
	// returned at login derives from this, keeping both in sync.
	TTL() time.Duration
}

// Claims is the verified payload of a token: exactly the fields the rest of
// the application needs, no more.
type Claims struct {
	// Subject is the email of the authenticated user.
	Subject string
	// IssuedAt is the time the token was minted.
	IssuedAt time.Time
	// ExpiresAt is the time after which the token is rejected.
	ExpiresAt time.Time
}
