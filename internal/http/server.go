// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gen-relay/genlayer-relay/internal/config"
	feedsHTTP "github.com/gen-relay/genlayer-relay/internal/feeds/http"
	"github.com/gen-relay/genlayer-relay/internal/metrics"
	signingHTTP "github.com/gen-relay/genlayer-relay/internal/signing/http"
)

// Server represents the API HTTP server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. metricsProvider may be nil when
// metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	signingHandler *signingHTTP.SigningHandler,
	feedHandler *feedsHTTP.FeedHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Signing endpoints
	router.POST("/sign", signingHandler.SignHandler)
	router.POST("/verify", signingHandler.VerifyHandler)

	// Feed endpoints
	router.GET("/prices", feedHandler.PricesHandler)
	router.GET("/prices/options", feedHandler.PriceOptionsHandler)
	router.GET("/weather", feedHandler.WeatherHandler)
	router.GET("/random", feedHandler.RandomHandler)

	// Dashboard
	router.NoRoute(newSPAHandler(cfg.StaticDir, s.logger))

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. Readiness reports not ready
// from this point on.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
