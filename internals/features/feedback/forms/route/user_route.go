package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formController "facultyfeedback_backend/internals/features/feedback/forms/controller"
)

// FormUserRoutes mounts the student-facing form listing.
func FormUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := formController.NewFormUserController(db)
	api.Get("/forms", ctrl.GetMyForms)
}

// FormPublicRoutes: question catalog for a form renders pre-auth.
func FormPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := formController.NewFormUserController(db)
	api.Get("/forms/:id/questions", ctrl.GetFormQuestions)
}
