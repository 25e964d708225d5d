package routes

import (
	"github.com/gin-gonic/gin"

	spechandlers "cordwain/internal/interfaces/http/handlers/specification"
	"cordwain/internal/interfaces/http/middleware"
)

type SpecificationRouteConfig struct {
	SpecificationHandler *spechandlers.SpecificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

func SetupSpecificationRoutes(engine *gin.Engine, config *SpecificationRouteConfig) {
	positions := engine.Group("/api/orders/:orderId/positions/:positionId")
	positions.Use(config.AuthMiddleware.RequireAuth())
	{
		positions.GET("/specification",
			config.SpecificationHandler.GetSpecification)

		// Uploading onto a view that already has media replaces it.
		positions.POST("/views/:viewKey/media",
			config.SpecificationHandler.UploadMedia)
		positions.DELETE("/views/:viewKey/media",
			config.SpecificationHandler.DeleteMedia)
		positions.PATCH("/views/:viewKey/media/status",
			config.SpecificationHandler.SetMediaStatus)

		positions.POST("/views/:viewKey/annotations",
			config.SpecificationHandler.AddAnnotation)
		positions.DELETE("/annotations/:annotationId",
			config.SpecificationHandler.DeleteAnnotation)
	}
}
