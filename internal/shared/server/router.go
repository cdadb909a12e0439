package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibe-backend/internal/analyses"
	"vibe-backend/internal/repositories"
	"vibe-backend/internal/shared/config"
	"vibe-backend/internal/shared/metrics"
	"vibe-backend/internal/shared/server/middleware"
	"vibe-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired into the router.
type RouterDeps struct {
	Config       config.Config
	Repositories *repositories.Handler
	Analyses     *analyses.Handler
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

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"message": "Vibe Reverse Engineer API",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.Repositories != nil {
		deps.Repositories.RegisterRoutes(api)
	}
	if deps.Analyses != nil {
		deps.Analyses.RegisterRoutes(api)
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
