package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/ticketing/controller"
	"eventku_backend/internals/middlewares"
)

func TicketingRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	typeCtl := controller.NewTicketTypeController(db, v)
	api.Post("/events/:id/ticket-types", typeCtl.Create)
	api.Get("/events/:id/ticket-types", typeCtl.ListByEvent)

	types := api.Group("/ticket-types")
	types.Get("/:id", typeCtl.GetByID)
	types.Patch("/:id", typeCtl.Update)
	types.Delete("/:id", typeCtl.Delete)

	ticketCtl := controller.NewTicketController(db, v)
	// Purchase gets its own tighter rate limit.
	types.Post("/:id/purchase", middlewares.PurchaseRateLimiter(), ticketCtl.Purchase)

	tickets := api.Group("/tickets")
	tickets.Get("/:id", ticketCtl.GetByID)
	tickets.Post("/:id/cancel", ticketCtl.Cancel)
	tickets.Post("/:id/redeem", ticketCtl.Redeem)

	api.Get("/users/:id/tickets", ticketCtl.ListByUser)
}
