package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/interfaces/http/handlers"
	"github.com/Gopesh111/TrueClause/internal/interfaces/http/middleware"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the HTTP route tree.  Nil entries are skipped.
type RouterConfig struct {
	AuditHandler  *handlers.AuditHandler
	RulesHandler  *handlers.RulesHandler
	HealthHandler *handlers.HealthHandler

	// RateLimiter guards /api/v1 only.
	RateLimiter middleware.RateLimiter
	Recorder    middleware.HTTPRecorder

	MetricsHandler http.Handler
	MetricsPath    string
	MaxBodySize    int64
	Mode           string

	Logger logging.Logger
}

// NewRouter wires global middleware, the public probes and metrics, and the
// /api/v1 resource group.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger, middleware.DefaultLoggingConfig()))
	if cfg.Recorder != nil {
		r.Use(middleware.Metrics(cfg.Recorder))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")
	api.Use(middleware.BodyLimit(cfg.MaxBodySize))
	if cfg.RateLimiter != nil {
		api.Use(middleware.RateLimit(cfg.RateLimiter, cfg.Logger))
	}
	registerAuditRoutes(api, cfg.AuditHandler)
	registerRuleRoutes(api, cfg.RulesHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Code: string(errors.ErrCodeNotFound), Message: errors.DefaultMessageForCode(errors.ErrCodeNotFound)})
	})
	return r
}

func registerAuditRoutes(r *gin.RouterGroup, h *handlers.AuditHandler) {
	if h == nil {
		return
	}
	r.POST("/audits", h.Create)
	r.POST("/emails", h.Email)
	r.GET("/demos", h.ListDemos)
	r.GET("/demos/:name", h.Demo)
}

func registerRuleRoutes(r *gin.RouterGroup, h *handlers.RulesHandler) {
	if h == nil {
		return
	}
	r.GET("/rules", h.List)
	// Labels contain "/", so the type is a catch-all segment.
	r.GET("/rules/*type", h.Get)
}

//Personal.AI order the ending
