package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "cordwain/internal/interfaces/http/handlers/ticket"
	"cordwain/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.DELETE("/:id/comments/:commentId",
			config.TicketHandler.DeleteComment)
		tickets.PATCH("/:id/status",
			config.TicketHandler.UpdateTicketStatus)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			config.TicketHandler.DeleteTicket)
	}
}
