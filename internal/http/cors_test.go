package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateCORSMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		origins   string
		expectNil bool
	}{
		{"disabled returns nil", false, "https://example.com", true},
		{"enabled without origins returns nil", true, "", true},
		{"enabled with single origin", true, "https://app.example.com", false},
		{"enabled with multiple origins", true, "https://app.example.com,https://admin.example.com", false},
		{"enabled with whitespace around origins", true, " https://app.example.com , https://admin.example.com ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, corsTestLogger())
			if tt.expectNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	t.Run("parses comma separated list", func(t *testing.T) {
		origins := parseOrigins("https://app.example.com,https://admin.example.com")
		assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, origins)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		origins := parseOrigins(" https://app.example.com , https://admin.example.com ")
		assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, origins)
	})

	t.Run("empty string yields nil", func(t *testing.T) {
		assert.Nil(t, parseOrigins(""))
	})
}

func newCORSTestRouter(enabled bool) *gin.Engine {
	middleware := createCORSMiddleware(enabled, "https://app.example.com", corsTestLogger())

	router := gin.New()
	if middleware != nil {
		router.Use(middleware)
	}
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func TestCORSIntegration_HeadersAddedWhenEnabled(t *testing.T) {
	router := newCORSTestRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIntegration_NoHeadersWhenDisabled(t *testing.T) {
	router := newCORSTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIntegration_PreflightRequestHandled(t *testing.T) {
	router := newCORSTestRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
