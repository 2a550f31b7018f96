package domain

import (
	"github.com/allisson/userauth/internal/errors"
)

// Authentication and authorization errors.
//
// ErrInvalidCredentials and ErrInvalidToken are deliberately generic: every
// failure on their respective paths converges to the same error so callers
// cannot distinguish "no such account" from "wrong password", or "malformed
// token" from "expired" from "subject deleted".
var (
	// ErrInvalidCredentials indicates the presented email/password pair did not
	// match a verifiable account.
	ErrInvalidCredentials = errors.WithMessage(errors.ErrUnauthorized, "incorrect username or password")

	// ErrInvalidToken indicates a presented token could not be validated.
	ErrInvalidToken = errors.WithMessage(errors.ErrUnauthorized, "could not validate credentials")

	// ErrMissingSubject indicates token claims were encoded without a
	// string-valued subject. This is a caller programming error.
	ErrMissingSubject = errors.Wrap(errors.ErrInvalidInput, "token claims must include a string subject")
)
