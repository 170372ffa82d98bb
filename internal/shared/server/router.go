package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-renderer/internal/generate"
	"resume-renderer/internal/services/health"
	"resume-renderer/internal/shared/config"
	"resume-renderer/internal/shared/metrics"
	"resume-renderer/internal/shared/server/middleware"
	"resume-renderer/internal/shared/server/respond"
)

// RouterDeps holds handlers and configuration used by NewRouter.
type RouterDeps struct {
	Config          config.Config
	GenerateHandler *generate.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Config.MetricsEnabled {
		r.Use(metrics.GinMiddleware())
		r.GET("/metrics", metrics.Handler())
	}
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Not found.")
	})

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api")
	v1 := api.Group("/v1")
	v1.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})

	if deps.GenerateHandler != nil {
		deps.GenerateHandler.RegisterRoutes(api)
		deps.GenerateHandler.RegisterRoutes(v1)
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
