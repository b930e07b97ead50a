package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/vladimiradmaev/quantified-self/internal/api/handlers"
	"github.com/vladimiradmaev/quantified-self/internal/config"
	"github.com/vladimiradmaev/quantified-self/internal/interfaces"
	"github.com/vladimiradmaev/quantified-self/internal/logger"
)

// APIPrefix is the path prefix of every resource route
const APIPrefix = "/api/v1"

// Server represents the HTTP server
type Server struct {
	config     config.HTTPConfig
	engine     *gin.Engine
	httpServer *http.Server
	health     interfaces.HealthChecker
	mu         sync.RWMutex
	ready      bool
}

// NewServer wires routes and middleware. health may be nil.
func NewServer(cfg config.HTTPConfig, deps handlers.Dependencies, health interfaces.HealthChecker) *Server {
	s := &Server{
		config: cfg,
		health: health,
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)
	}

	s.engine = s.setupRoutes(deps, limiter)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) setupRoutes(deps handlers.Dependencies, limiter *rate.Limiter) *gin.Engine {
	r := gin.New()
	r.Use(
		requestIDMiddleware(),
		loggingMiddleware(),
		metricsMiddleware(),
		corsMiddleware(),
		recoveryMiddleware(),
	)

	// System endpoints (no rate limiting)
	r.GET("/health", s.handleHealth)
	r.GET("/ready", s.handleReady)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group(APIPrefix)
	v1.Use(rateLimitMiddleware(limiter))
	handlers.RegisterRoutes(v1, deps)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found: " + c.Request.URL.Path})
	})
	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			logger.Warn("Health check failed", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleReady(c *gin.Context) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// SetReady marks the server as ready to serve traffic
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	logger.Infof("%s is running on %d.", config.AppTitle, s.config.Port)

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return fmt.Errorf("failed to serve http: %w", err)
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}
