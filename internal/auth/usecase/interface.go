// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/userauth/internal/auth/domain"
	userDomain "github.com/allisson/userauth/internal/user/domain"
)

// UserRepository is the credential-store capability the authentication flows
// depend on. Implementations must be safe for concurrent use and report
// absence via ErrUserNotFound rather than a nil, nil pair.
type UserRepository interface {
	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id int64) (*userDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// AuthUseCase defines the authentication business logic: issuing bearer tokens
// for verified credentials and resolving presented tokens back to live users.
type AuthUseCase interface {
	// Login verifies the presented credentials and issues a signed access token.
	//
	// A missing account and a wrong password both fail with the identical
	// ErrInvalidCredentials so callers cannot probe for account existence.
	// The operation mutates nothing: a failed attempt is final for that call.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authenticate decodes a presented token and resolves it to a live user.
	//
	// Every failure branch (malformed token, bad signature, expired, missing
	// or non-numeric subject, subject no longer in the store) converges to
	// the identical ErrInvalidToken. The branches are distinguished only in
	// debug-level logs for operators.
	Authenticate(ctx context.Context, tokenString string) (*userDomain.User, error)
}
