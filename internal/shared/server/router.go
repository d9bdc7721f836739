package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-page/internal/page"
	"resume-page/internal/services/health"
	"resume-page/internal/shared/config"
	"resume-page/internal/shared/metrics"
	"resume-page/internal/shared/server/middleware"
	"resume-page/internal/shared/server/respond"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config      config.Config
	PageHandler *page.Handler
	Health      *health.Service
	Assets      fs.FS
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	cfg := deps.Config

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	if deps.Assets != nil {
		r.StaticFS("/static", http.FS(deps.Assets))
	}
	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}
	if cfg.ResumeSource == config.SourceLocal && cfg.LocalDataDir != "" {
		r.Static("/data", cfg.LocalDataDir)
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})

	if deps.PageHandler != nil {
		deps.PageHandler.RegisterRoutes(r)
		deps.PageHandler.RegisterAPIRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "route not found", nil)
	})

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
