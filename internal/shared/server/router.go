package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/config"
	"resume-roast/internal/shared/metrics"
	"resume-roast/internal/shared/server/middleware"
	"resume-roast/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to a group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Handlers are the feature handlers mounted under /api/v1.
type Handlers struct {
	Analyze  gin.HandlerFunc
	Rebuild  gin.HandlerFunc
	Checkout gin.HandlerFunc
	Features []RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.NoMethod(func(c *gin.Context) {
		respond.Fail(c, apperr.ErrMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Route not found", nil)
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	for _, f := range h.Features {
		f.RegisterRoutes(api)
	}

	// Unversioned paths kept for existing clients.
	legacy := r.Group("/api")
	if h.Analyze != nil {
		legacy.POST("/analyze", h.Analyze)
	}
	if h.Rebuild != nil {
		legacy.POST("/rebuild", h.Rebuild)
	}
	if h.Checkout != nil {
		legacy.POST("/create-checkout", h.Checkout)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
