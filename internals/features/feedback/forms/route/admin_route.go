package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formController "facultyfeedback_backend/internals/features/feedback/forms/controller"
)

func FormAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := formController.NewFormController(db)

	forms := api.Group("/forms")
	forms.Get("/", ctrl.GetAll)
	forms.Post("/", ctrl.Create)
	forms.Post("/generate", ctrl.Generate)
	forms.Put("/:id", ctrl.Update)
	forms.Patch("/:id/status", ctrl.UpdateStatus)
	forms.Delete("/:id", ctrl.Delete)
}
