package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/profiles"
	"profile-backend/internal/services/health"
	"profile-backend/internal/shared/config"
	"profile-backend/internal/shared/metrics"
	"profile-backend/internal/shared/server/middleware"
	"profile-backend/internal/shared/server/respond"
	"profile-backend/internal/uploads"
	"profile-backend/web"
)

// RouterDeps carries the handlers and services the router mounts.
type RouterDeps struct {
	Config          config.Config
	HealthService   *health.Service
	ProfilesHandler *profiles.Handler
	UploadsHandler  *uploads.Handler
	WebHandler      *web.Handler
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

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.HealthService.Status())
	})
	deps.UploadsHandler.RegisterRoutes(api)
	deps.ProfilesHandler.RegisterRoutes(api)

	deps.WebHandler.RegisterRoutes(r)

	r.GET("/metrics", metrics.Handler())

	// Only the local store needs the app itself to serve uploaded files.
	if deps.Config.ObjectStoreType == "local" {
		deps.UploadsHandler.RegisterServeRoute(r)
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
