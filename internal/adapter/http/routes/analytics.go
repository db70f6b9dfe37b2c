package routes

import (
	"lazarus_guide/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAnalytics = "/analytics/guides"

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/daily-summary", analyticsHandler.GetDailySummary)
		analytics.GET("/by-status", analyticsHandler.GetGuidesByStatus)
		analytics.GET("/statistics", analyticsHandler.GetStatistics)
		analytics.GET("/revenue", analyticsHandler.GetRevenue)
	}
}
