package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterUserRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := RegisterUserRequest{
			Name:     "Test User",
			Email:    "user@example.com",
			Password: "Str0ng!Password",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		req := RegisterUserRequest{
			Email:    "user@example.com",
			Password: "Str0ng!Password",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		req := RegisterUserRequest{
			Name:     "   ",
			Email:    "user@example.com",
			Password: "Str0ng!Password",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_MissingEmail", func(t *testing.T) {
		req := RegisterUserRequest{
			Name:     "Test User",
			Password: "Str0ng!Password",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_MissingPassword", func(t *testing.T) {
		req := RegisterUserRequest{
			Name:  "Test User",
			Email: "user@example.com",
		}
		assert.Error(t, req.Validate())
	})
}
