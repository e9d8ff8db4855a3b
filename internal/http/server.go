// Package http provides the API server: router setup, middleware and
// lifecycle management.
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

	catalogHTTP "github.com/allisson/identity/internal/catalog/http"
	"github.com/allisson/identity/internal/config"
	"github.com/allisson/identity/internal/metrics"
	principalHTTP "github.com/allisson/identity/internal/principal/http"
	roleHTTP "github.com/allisson/identity/internal/role/http"
	scopeHTTP "github.com/allisson/identity/internal/scope/http"
	tokenHTTP "github.com/allisson/identity/internal/token/http"
	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server.
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

// RouterConfig groups the handlers and settings SetupRouter wires together.
type RouterConfig struct {
	Config            *config.Config
	MetricsProvider   *metrics.Provider
	TokenUseCase      tokenUseCase.TokenUseCase
	TokenHandler      *tokenHTTP.TokenHandler
	DomainHandler     *scopeHTTP.DomainHandler
	ProjectHandler    *scopeHTTP.ProjectHandler
	UserHandler       *principalHTTP.UserHandler
	GroupHandler      *principalHTTP.GroupHandler
	RoleHandler       *roleHTTP.RoleHandler
	AssignmentHandler *roleHTTP.AssignmentHandler
	EndpointHandler   *catalogHTTP.EndpointHandler
	CatalogHandler    *catalogHTTP.CatalogHandler
}

// SetupRouter builds the gin router and registers all routes. Token issuance
// is the only unauthenticated API route; everything else under /v1 requires a
// valid X-Auth-Token.
func (s *Server) SetupRouter(rc *RouterConfig) {
	gin.SetMode(rc.Config.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(rc.Config.CORSEnabled, rc.Config.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.Config.MetricsEnabled && rc.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(rc.MetricsProvider.MeterProvider(), rc.Config.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Token issuance authenticates by credential, not by token, so it sits
	// outside the authenticated group and gets per-IP rate limiting instead.
	issue := router.Group("/v1/auth")
	if rc.Config.RateLimitTokenEnabled {
		issue.Use(TokenRateLimitMiddleware(
			rc.Config.RateLimitTokenRequestsPerSec,
			rc.Config.RateLimitTokenBurst,
			s.logger,
		))
	}
	issue.POST("/tokens", rc.TokenHandler.IssueHandler)

	v1 := router.Group("/v1")
	v1.Use(tokenHTTP.AuthenticationMiddleware(rc.TokenUseCase, s.logger))

	v1.GET("/auth/tokens", rc.TokenHandler.ValidateHandler)
	v1.POST("/auth/tokens/rescope", rc.TokenHandler.RescopeHandler)
	v1.DELETE("/auth/tokens", rc.TokenHandler.RevokeHandler)

	v1.POST("/domains", rc.DomainHandler.CreateHandler)
	v1.GET("/domains", rc.DomainHandler.ListHandler)
	v1.GET("/domains/:id", rc.DomainHandler.GetHandler)
	v1.PUT("/domains/:id", rc.DomainHandler.UpdateHandler)
	v1.DELETE("/domains/:id", rc.DomainHandler.DeleteHandler)

	v1.POST("/projects", rc.ProjectHandler.CreateHandler)
	v1.GET("/projects", rc.ProjectHandler.ListHandler)
	v1.GET("/projects/:id", rc.ProjectHandler.GetHandler)
	v1.PUT("/projects/:id", rc.ProjectHandler.UpdateHandler)
	v1.DELETE("/projects/:id", rc.ProjectHandler.DeleteHandler)

	v1.POST("/users", rc.UserHandler.CreateHandler)
	v1.GET("/users", rc.UserHandler.ListHandler)
	v1.GET("/users/:id", rc.UserHandler.GetHandler)
	v1.PUT("/users/:id", rc.UserHandler.UpdateHandler)
	v1.PUT("/users/:id/password", rc.UserHandler.ChangePasswordHandler)
	v1.DELETE("/users/:id", rc.UserHandler.DeleteHandler)

	v1.POST("/groups", rc.GroupHandler.CreateHandler)
	v1.GET("/groups", rc.GroupHandler.ListHandler)
	v1.GET("/groups/:id", rc.GroupHandler.GetHandler)
	v1.PUT("/groups/:id", rc.GroupHandler.UpdateHandler)
	v1.DELETE("/groups/:id", rc.GroupHandler.DeleteHandler)
	v1.PUT("/groups/:id/members/:user_id", rc.GroupHandler.AddMemberHandler)
	v1.DELETE("/groups/:id/members/:user_id", rc.GroupHandler.RemoveMemberHandler)
	v1.GET("/groups/:id/members", rc.GroupHandler.ListMembersHandler)

	v1.POST("/roles", rc.RoleHandler.CreateHandler)
	v1.GET("/roles", rc.RoleHandler.ListHandler)
	v1.GET("/roles/:id", rc.RoleHandler.GetHandler)
	v1.PUT("/roles/:id", rc.RoleHandler.UpdateHandler)
	v1.DELETE("/roles/:id", rc.RoleHandler.DeleteHandler)

	v1.POST("/role-assignments", rc.AssignmentHandler.CreateHandler)
	v1.GET("/role-assignments", rc.AssignmentHandler.ListHandler)
	v1.DELETE("/role-assignments", rc.AssignmentHandler.DeleteHandler)
	v1.GET("/effective-roles", rc.AssignmentHandler.EffectiveRolesHandler)

	v1.POST("/endpoints", rc.EndpointHandler.CreateHandler)
	v1.GET("/endpoints", rc.EndpointHandler.ListHandler)
	v1.GET("/endpoints/:id", rc.EndpointHandler.GetHandler)
	v1.PUT("/endpoints/:id", rc.EndpointHandler.UpdateHandler)
	v1.DELETE("/endpoints/:id", rc.EndpointHandler.DeleteHandler)

	v1.GET("/catalog", rc.CatalogHandler.ListHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

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

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
