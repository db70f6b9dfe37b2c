package routes

import (
	"net/http"

	"lazarus_guide/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addServiceRoutes registers the unauthenticated surface: the service card
// at the root and the health probes.
func addServiceRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "guides-service",
			"version": "1.0.0",
			"endpoints": gin.H{
				"guides":    "/api/v1/guides",
				"analytics": "/api/v1/analytics",
				"health":    "/health",
				"docs":      "/swagger/index.html",
			},
		})
	})

	r.GET("/health", healthHandler.Health)
	r.GET("/health/ready", healthHandler.Ready)
	r.GET("/health/live", healthHandler.Live)
}
