// Package http assembles the gin route tree and the server lifecycle for
// the recommendation API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/prometheus"
	"github.com/reactwise/condrec/internal/interfaces/http/handlers"
	"github.com/reactwise/condrec/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and cross-cutting dependencies for
// the full route tree.
type RouterConfig struct {
	RecommendHandler *handlers.RecommendHandler
	EvidenceHandler  *handlers.EvidenceHandler
	HealthHandler    *handlers.HealthHandler

	CORS      middleware.CORSConfig
	RateLimit middleware.RateLimitConfig

	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector

	Mode string
}

// NewRouter wires global middleware, probes, and the v1 API group.
func NewRouter(cfg RouterConfig) *gin.Engine {
	switch cfg.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics))
	r.Use(middleware.RateLimit(cfg.RateLimit))

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsCollector.Handler()))
	}

	v1 := r.Group("/api/v1")
	if cfg.RecommendHandler != nil {
		v1.POST("/recommendations", cfg.RecommendHandler.Create)
		v1.GET("/reaction-types", cfg.RecommendHandler.ListReactionTypes)
	}
	if cfg.EvidenceHandler != nil {
		v1.GET("/evidence/:tag", cfg.EvidenceHandler.Get)
		v1.GET("/evidence/:tag/generations", cfg.EvidenceHandler.Generations)
		v1.POST("/evidence/:tag/refresh", cfg.EvidenceHandler.Refresh)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "COMMON_003", "message": "route not found"},
		})
	})

	return r
}

// ModeFromConfig maps server config onto a gin mode string.
func ModeFromConfig(cfg config.ServerConfig) string {
	if cfg.Mode == "" {
		return "release"
	}
	return cfg.Mode
}
