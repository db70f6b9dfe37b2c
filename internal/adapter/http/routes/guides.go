package routes

import (
	"lazarus_guide/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathGuides = "/guides"

func addGuideRoutes(rg *gin.RouterGroup, guideHandler *handlers.GuideHandler) {
	guides := rg.Group(PathGuides)
	{
		guides.GET("", guideHandler.ListGuides)
		guides.GET("/stats", guideHandler.GetGuideStats)

		// Static prefixes must come before the :id wildcard.
		guides.GET("/procedures/:procedureId", guideHandler.GetProcedureByID)
		guides.PUT("/procedures/:procedureId/status", guideHandler.UpdateProcedureStatus)

		guides.GET("/:id", guideHandler.GetGuideByID)
		guides.GET("/:id/procedures", guideHandler.GetGuideProcedures)
	}
}
