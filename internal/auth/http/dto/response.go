// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	authDomain "github.com/allisson/userauth/internal/auth/domain"
)

// TokenResponse contains the result of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MapLoginOutputToResponse converts a login result to an API response.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) TokenResponse {
	return TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	}
}
