package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/users/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	userCtl := controller.NewUserController(db, v)
	users := api.Group("/users")
	users.Post("/", userCtl.Create)
	users.Get("/", userCtl.List)
	users.Get("/:id", userCtl.GetByID)
	users.Patch("/:id", userCtl.Update)
	users.Post("/:id/deactivate", userCtl.Deactivate)
	users.Delete("/:id", userCtl.Delete)

	roleCtl := controller.NewRoleController(db, v)
	roles := api.Group("/roles")
	roles.Post("/", roleCtl.Create)
	roles.Get("/", roleCtl.List)
	roles.Delete("/:id", roleCtl.Delete)

	// Role assignments hang off the user.
	users.Get("/:id/roles", roleCtl.ListUserRoles)
	users.Post("/:id/roles", roleCtl.AssignRole)
	users.Delete("/:id/roles/:roleId", roleCtl.RevokeRole)
}
