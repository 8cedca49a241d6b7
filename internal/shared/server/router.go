package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codereview-backend/internal/reviews"
	"codereview-backend/internal/services/health"
	"codereview-backend/internal/shared/config"
	"codereview-backend/internal/shared/metrics"
	"codereview-backend/internal/shared/server/middleware"
	"codereview-backend/internal/shared/server/respond"
)

// RouterDeps holds dependencies for routing.
type RouterDeps struct {
	Config        config.Config
	ReviewHandler *reviews.Handler
	Health        *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, deps.Config.ModelName)
	}
	healthHandler := func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	}

	r.GET("/health", healthHandler)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler)

	if deps.ReviewHandler != nil {
		// The bare /review path is what existing clients post to.
		deps.ReviewHandler.RegisterRoutes(r)
		deps.ReviewHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
