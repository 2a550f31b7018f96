// Package domain defines the core user domain entities and types.
package domain

import (
	"strings"
	"time"

	"github.com/allisson/userauth/internal/errors"
)

// User represents a registered account in the system.
// ID is assigned by the database on registration. Password holds the
// one-way digest, never the plaintext.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail lowercases and trims an email address. Registration and
// login both canonicalize through it so stored values and lookups agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
