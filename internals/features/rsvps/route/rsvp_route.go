package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/rsvps/controller"
)

func RSVPRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	rsvpCtl := controller.NewRSVPController(db, v)
	api.Post("/events/:id/rsvps", rsvpCtl.Create)
	api.Get("/events/:id/rsvps", rsvpCtl.ListByEvent)

	rsvps := api.Group("/rsvps")
	rsvps.Patch("/:rsvpId", rsvpCtl.Update)
	rsvps.Delete("/:rsvpId", rsvpCtl.Delete)

	feedbackCtl := controller.NewEventFeedbackController(db, v)
	api.Post("/events/:id/feedback", feedbackCtl.Create)
	api.Get("/events/:id/feedback", feedbackCtl.ListByEvent)
	api.Get("/events/:id/feedback/summary", feedbackCtl.Summary)

	feedback := api.Group("/feedback")
	feedback.Patch("/:feedbackId", feedbackCtl.Update)
	feedback.Delete("/:feedbackId", feedbackCtl.Delete)
}
