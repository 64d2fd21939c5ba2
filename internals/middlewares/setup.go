package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"alwantayf_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware stack (order matters:
// recovery first so nothing below can crash the process).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
