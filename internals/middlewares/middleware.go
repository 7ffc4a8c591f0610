package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"eventku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the shared middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
