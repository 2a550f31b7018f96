package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/userauth/internal/auth/domain"
	"github.com/allisson/userauth/internal/auth/http/dto"
	authUseCase "github.com/allisson/userauth/internal/auth/usecase"
	"github.com/allisson/userauth/internal/httputil"
	customValidation "github.com/allisson/userauth/internal/validation"
)

// TokenHandler handles HTTP requests for token operations.
// It coordinates token issuance with the AuthUseCase.
type TokenHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// IssueTokenHandler issues a new access token for a user.
// POST /v1/auth/token - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the access token and token type, or 401 Unauthorized with the
// same response body for unknown emails and wrong passwords alike.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Create input for use case
	input := &authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	// Call use case
	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}
