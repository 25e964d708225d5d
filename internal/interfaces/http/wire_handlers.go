package http

import (
	"github.com/gin-gonic/gin"

	specHandlers "cordwain/internal/interfaces/http/handlers/specification"
	ticketHandlers "cordwain/internal/interfaces/http/handlers/ticket"
	"cordwain/internal/interfaces/http/middleware"
	"cordwain/internal/interfaces/http/routes"
	"cordwain/internal/interfaces/http/validation"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	ticketHandler        *ticketHandlers.TicketHandler
	specificationHandler *specHandlers.SpecificationHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			c.registry,
			c.ucs.getTicketUC,
			c.ucs.listTicketsUC,
			c.thread,
		),
		specificationHandler: specHandlers.NewSpecificationHandler(c.sessions),
	}
}

func (c *Container) setupRoutes() {
	validation.RegisterCustomValidators()

	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupSpecificationRoutes(c.engine, &routes.SpecificationRouteConfig{
		SpecificationHandler: c.hdlrs.specificationHandler,
		AuthMiddleware:       c.authMiddleware,
	})
}
