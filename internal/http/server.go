// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/userauth/internal/auth/http"
	authUsecase "github.com/allisson/userauth/internal/auth/usecase"
	"github.com/allisson/userauth/internal/config"
	userHTTP "github.com/allisson/userauth/internal/user/http"
	userUsecase "github.com/allisson/userauth/internal/user/usecase"
)

// Server represents the HTTP server.
type Server struct {
	config            *config.Config
	db                *sql.DB
	server            *http.Server
	logger            *slog.Logger
	userHandler       *userHTTP.UserHandler
	tokenHandler      *authHTTP.TokenHandler
	authMiddleware    gin.HandlerFunc
	metricsMiddleware gin.HandlerFunc
}

// NewServer creates a new HTTP server with all routes registered.
// metricsMiddleware may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	userUseCase userUsecase.UseCase,
	authUseCase authUsecase.AuthUseCase,
	metricsMiddleware gin.HandlerFunc,
) *Server {
	s := &Server{
		config:            cfg,
		db:                db,
		logger:            logger,
		userHandler:       userHTTP.NewUserHandler(userUseCase, logger),
		tokenHandler:      authHTTP.NewTokenHandler(authUseCase, logger),
		authMiddleware:    authHTTP.AuthenticationMiddleware(authUseCase, logger),
		metricsMiddleware: metricsMiddleware,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.setupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter builds the Gin engine with middleware and all API routes.
func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(s.config.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(
		s.config.CORSEnabled,
		s.config.CORSAllowOrigins,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsMiddleware != nil {
		router.Use(s.metricsMiddleware)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Public endpoints
	v1.POST("/users", s.userHandler.RegisterHandler)

	tokenHandlers := []gin.HandlerFunc{}
	if s.config.RateLimitTokenEnabled {
		tokenHandlers = append(tokenHandlers, authHTTP.TokenRateLimitMiddleware(
			s.config.RateLimitTokenRequestsPerSec,
			s.config.RateLimitTokenBurst,
			s.logger,
		))
	}
	tokenHandlers = append(tokenHandlers, s.tokenHandler.IssueTokenHandler)
	v1.POST("/auth/token", tokenHandlers...)

	// Authenticated endpoints
	users := v1.Group("/users")
	users.Use(s.authMiddleware)
	users.GET("/me", s.userHandler.MeHandler)
	users.GET("/:id", s.userHandler.GetHandler)

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic.
// It pings the database with a short timeout and reports per-component status.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	status := http.StatusOK
	overall := "ready"

	if s.db == nil {
		components["database"] = "error"
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.String("error", err.Error()))
			components["database"] = "error"
			status = http.StatusServiceUnavailable
			overall = "not_ready"
		} else {
			components["database"] = "ok"
		}
	}

	c.JSON(status, gin.H{"status": overall, "components": components})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
