package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/events/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	categoryCtl := controller.NewEventCategoryController(db, v)
	categories := api.Group("/event-categories")
	categories.Post("/", categoryCtl.Create)
	categories.Get("/", categoryCtl.List)
	categories.Delete("/:id", categoryCtl.Delete)

	eventCtl := controller.NewEventController(db, v)
	events := api.Group("/events")
	events.Post("/", eventCtl.Create)
	events.Get("/", eventCtl.List)
	events.Get("/:id", eventCtl.GetByID)
	events.Patch("/:id", eventCtl.Update)
	events.Patch("/:id/status", eventCtl.UpdateStatus)
	events.Delete("/:id", eventCtl.Delete)

	scheduleCtl := controller.NewEventScheduleController(db, v)
	events.Post("/:id/schedules", scheduleCtl.Create)
	events.Get("/:id/schedules", scheduleCtl.ListByEvent)
	api.Patch("/event-schedules/:scheduleId", scheduleCtl.Update)
	api.Delete("/event-schedules/:scheduleId", scheduleCtl.Delete)
}
