package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	responseController "facultyfeedback_backend/internals/features/feedback/responses/controller"
	"facultyfeedback_backend/internals/middlewares"
)

// ResponseUserRoutes mounts the student submission flow.
func ResponseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := responseController.NewResponseUserController(db)

	responses := api.Group("/responses")
	responses.Post("/", middlewares.SubmitRateLimiter(), ctrl.Submit)
	responses.Get("/", ctrl.GetMine)
}
