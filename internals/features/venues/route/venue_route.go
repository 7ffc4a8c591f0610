package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/venues/controller"
)

func VenueRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	venueCtl := controller.NewVenueController(db, v)
	venues := api.Group("/venues")
	venues.Post("/", venueCtl.Create)
	venues.Get("/", venueCtl.List)
	venues.Get("/:id", venueCtl.GetByID)
	venues.Patch("/:id", venueCtl.Update)
	venues.Delete("/:id", venueCtl.Delete)

	sectionCtl := controller.NewVenueSectionController(db, v)
	venues.Post("/:id/sections", sectionCtl.Create)
	venues.Get("/:id/sections", sectionCtl.ListByVenue)
	api.Patch("/venue-sections/:sectionId", sectionCtl.Update)
	api.Delete("/venue-sections/:sectionId", sectionCtl.Delete)
}
