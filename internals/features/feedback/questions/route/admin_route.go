package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "facultyfeedback_backend/internals/features/feedback/questions/controller"
)

func QuestionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)

	questions := api.Group("/questions")
	questions.Get("/", ctrl.GetAll)
	questions.Post("/", ctrl.Create)
	questions.Put("/:id", ctrl.Update)
	questions.Delete("/:id", ctrl.Delete)
}
