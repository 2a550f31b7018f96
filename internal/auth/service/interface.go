// Package service provides technical services for authentication operations.
//
// This package implements the password hashing and token encoding primitives
// the authentication use case is built on: one-way credential digests and
// signed, time-limited bearer tokens.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PasswordService defines operations for password hashing and verification.
// Implementations must use a deliberately slow, adaptive hashing algorithm
// (e.g., bcrypt, argon2) with per-password salts.
type PasswordService interface {
	// Hash produces a salted one-way digest of the plain password.
	// The digest is safe to persist; the plaintext never is.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Verify compares a plain password against a stored digest.
	// Returns false on any mismatch, including a malformed digest.
	// The comparison is constant-time to prevent timing attacks.
	Verify(plainPassword string, hashedPassword string) bool
}

// TokenCodec defines operations for encoding and decoding signed access tokens.
//
// Tokens are stateless: all claims travel inside the signed artifact and
// nothing is persisted server-side. Expiry is the only lifecycle end.
type TokenCodec interface {
	// Encode signs the claim set with the configured key and default lifetime.
	// The claims must include a string-valued subject; a missing or non-string
	// subject is a caller programming error and fails with ErrMissingSubject.
	Encode(claims map[string]any) (string, error)

	// EncodeWithTTL is Encode with an explicit lifetime overriding the default.
	// The lifetime may be zero or negative, producing an already-expired token.
	EncodeWithTTL(claims map[string]any, ttl time.Duration) (string, error)

	// Decode verifies the signature and expiry of a token and returns its
	// claims. Any failure (malformed structure, wrong signature, unexpected
	// algorithm, or expiry in the past) yields a non-nil error and no claims;
	// callers must treat all decode failures identically.
	Decode(tokenString string) (jwt.MapClaims, error)
}
