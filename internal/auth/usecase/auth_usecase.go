// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	authDomain "github.com/allisson/userauth/internal/auth/domain"
	authService "github.com/allisson/userauth/internal/auth/service"
	userDomain "github.com/allisson/userauth/internal/user/domain"
)

// authUseCase implements AuthUseCase on top of the credential store, the
// password service, and the token codec. Each call is a stateless read;
// concurrent invocations need no coordination.
type authUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
	logger          *slog.Logger
}

// Login authenticates a user by email and password and issues an access token.
//
// This method:
// 1. Looks up the account by email
// 2. Verifies the password against the stored digest
// 3. Issues a token with the user ID as string subject plus the email claim
// 4. Returns the token with the fixed "bearer" token type
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both non-existent accounts and wrong
//     passwords to prevent user enumeration attacks
//   - The plaintext password is never logged or persisted
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	// Emails are stored in canonical form, so the presented one is
	// canonicalized the same way before lookup
	user, err := a.userRepo.GetByEmail(ctx, userDomain.NormalizeEmail(input.Email))
	if err != nil {
		// If the account is absent, return the generic error to prevent enumeration
		if errors.Is(err, userDomain.ErrUserNotFound) {
			a.logger.Debug("login failed: account not found")
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.Verify(input.Password, user.Password) {
		a.logger.Debug("login failed: password mismatch",
			slog.Int64("user_id", user.ID))
		return nil, authDomain.ErrInvalidCredentials
	}

	accessToken, err := a.tokenCodec.Encode(map[string]any{
		authDomain.ClaimSubject: strconv.FormatInt(user.ID, 10),
		authDomain.ClaimEmail:   user.Email,
	})
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		AccessToken: accessToken,
		TokenType:   authDomain.TokenTypeBearer,
	}, nil
}

// Authenticate validates an access token and returns the user it was issued for.
//
// This method:
// 1. Decodes and verifies the token via the codec
// 2. Extracts the subject claim
// 3. Parses the subject as a numeric user ID
// 4. Confirms the user still exists in the store
//
// Security Notes:
//   - Every failure branch returns the identical ErrInvalidToken so a caller
//     learns nothing about why a token was rejected (expired vs malformed vs
//     deleted subject); the distinction is kept in debug logs only
//   - The presented token string is never logged
func (a *authUseCase) Authenticate(ctx context.Context, tokenString string) (*userDomain.User, error) {
	claims, err := a.tokenCodec.Decode(tokenString)
	if err != nil {
		a.logger.Debug("authenticate failed: token decode",
			slog.Any("error", err))
		return nil, authDomain.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		a.logger.Debug("authenticate failed: missing subject claim")
		return nil, authDomain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		a.logger.Debug("authenticate failed: non-numeric subject claim")
		return nil, authDomain.ErrInvalidToken
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		// The account may have been deleted after token issuance
		if errors.Is(err, userDomain.ErrUserNotFound) {
			a.logger.Debug("authenticate failed: subject no longer exists",
				slog.Int64("user_id", userID))
			return nil, authDomain.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
		logger:          logger,
	}
}
