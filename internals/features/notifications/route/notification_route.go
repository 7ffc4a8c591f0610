package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewNotificationController(db, v)

	notifications := api.Group("/notifications")
	notifications.Post("/", ctl.Create)
	notifications.Patch("/:id/read", ctl.MarkRead)
	notifications.Delete("/:id", ctl.Delete)

	api.Get("/users/:id/notifications", ctl.ListByUser)
	api.Post("/users/:id/notifications/read-all", ctl.MarkAllRead)
}
