package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "facultyfeedback_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order:
// recovery first so everything below is panic-safe, then logging,
// CORS and the global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
