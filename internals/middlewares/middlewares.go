package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"studenthub_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the base middleware chain (order matters).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
