package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/userauth/internal/errors"
)

// passwordService implements PasswordService using Argon2id digests.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash produces a salted Argon2id digest of the plain password.
func (s *passwordService) Hash(plainPassword string) (string, error) {
	hashedPassword, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// Verify performs a constant-time comparison between a plain password and its digest.
// A malformed digest verifies as false rather than erroring.
func (s *passwordService) Verify(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a new PasswordService instance.
// Uses the Interactive policy, tuned for user-facing login latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
