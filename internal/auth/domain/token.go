// Package domain defines authentication domain models and errors.
// The core flow is credential verification, token issuance, and token
// resolution back to a live user account.
package domain

// TokenTypeBearer is the fixed token type tag returned with every issued token.
const TokenTypeBearer = "bearer"

// Standard claim names carried by issued tokens.
const (
	ClaimSubject  = "sub"
	ClaimEmail    = "email"
	ClaimIssuedAt = "iat"
	ClaimExpiry   = "exp"
)

// LoginInput contains the credentials presented to the authenticator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the issued credential artifact handed back to the client.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}
