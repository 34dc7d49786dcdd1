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

	identityHTTP "github.com/skywalker/milestones/internal/identity/http"
	milestoneHTTP "github.com/skywalker/milestones/internal/milestone/http"
)

// RouterConfig carries the handlers and options needed to build the API router.
type RouterConfig struct {
	// AuthHandler serves the public signup and login endpoints.
	AuthHandler *identityHTTP.AuthHandler
	// MilestoneHandler serves the milestone CRUD endpoints.
	MilestoneHandler *milestoneHTTP.MilestoneHandler
	// AuthMiddleware guards every route below /api except the auth endpoints.
	AuthMiddleware gin.HandlerFunc
	// MetricsMiddleware records request metrics; nil disables it.
	MetricsMiddleware gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	logger *slog.Logger
	router *gin.Engine
	server *http.Server
}

// NewServer creates a new API server. The database handle is only used by the
// readiness endpoint.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router with middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	auth := router.Group("/api/auth")
	auth.POST("/signup", cfg.AuthHandler.SignupHandler)
	auth.POST("/login", cfg.AuthHandler.LoginHandler)

	milestones := router.Group("/api/milestones")
	milestones.Use(cfg.AuthMiddleware)
	milestones.POST("", cfg.MilestoneHandler.CreateMilestoneHandler)
	milestones.GET("", cfg.MilestoneHandler.ListMilestonesHandler)
	milestones.GET("/:id", cfg.MilestoneHandler.GetMilestoneHandler)
	milestones.PUT("/:id", cfg.MilestoneHandler.UpdateMilestoneHandler)
	milestones.DELETE("/:id", cfg.MilestoneHandler.DeleteMilestoneHandler)

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
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

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := "ready"
	statusCode := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil {
		components["database"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	} else if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["database"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":     status,
		"components": components,
	})
}
