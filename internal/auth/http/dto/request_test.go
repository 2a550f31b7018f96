package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com", Password: "password"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_MissingEmail", func(t *testing.T) {
		req := LoginRequest{Password: "password"}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_MissingPassword", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com"}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_BlankPassword", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com", Password: "   "}
		assert.Error(t, req.Validate())
	})
}
