package routes

import (
	"testing"

	"lazarus_guide/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestAddAnalyticsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	v1 := r.Group("/api/v1")
	addAnalyticsRoutes(v1, handlers.NewAnalyticsHandler(nil))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		if route.Method == "GET" {
			registered[route.Path] = true
		}
	}

	for _, path := range []string{
		"/api/v1/analytics/guides/daily-summary",
		"/api/v1/analytics/guides/by-status",
		"/api/v1/analytics/guides/statistics",
		"/api/v1/analytics/guides/revenue",
	} {
		if !registered[path] {
			t.Fatalf("expected route %s to be registered, got %v", path, r.Routes())
		}
	}
}
