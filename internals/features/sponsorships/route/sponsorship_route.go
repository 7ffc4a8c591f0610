package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/sponsorships/controller"
)

func SponsorshipRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	sponsorCtl := controller.NewSponsorController(db, v)
	sponsors := api.Group("/sponsors")
	sponsors.Post("/", sponsorCtl.Create)
	sponsors.Get("/", sponsorCtl.List)
	sponsors.Get("/:id", sponsorCtl.GetByID)
	sponsors.Patch("/:id", sponsorCtl.Update)
	sponsors.Delete("/:id", sponsorCtl.Delete)

	tierCtl := controller.NewSponsorshipTierController(db, v)
	tiers := api.Group("/sponsorship-tiers")
	tiers.Post("/", tierCtl.Create)
	tiers.Get("/", tierCtl.List)
	tiers.Delete("/:id", tierCtl.Delete)

	linkCtl := controller.NewEventSponsorController(db, v)
	api.Post("/events/:id/sponsors", linkCtl.Attach)
	api.Get("/events/:id/sponsors", linkCtl.ListByEvent)
	api.Patch("/events/:id/sponsors/:sponsorId", linkCtl.Update)
	api.Delete("/events/:id/sponsors/:sponsorId", linkCtl.Detach)
}
