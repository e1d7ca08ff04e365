package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyController "facultyfeedback_backend/internals/features/academics/faculty/controller"
)

func FacultyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := facultyController.NewFacultyController(db)

	faculty := api.Group("/faculty")
	faculty.Get("/", ctrl.GetAll)
	faculty.Post("/", ctrl.Create)
	faculty.Post("/bulk", ctrl.BulkImport)
	faculty.Put("/:id", ctrl.Update)
	faculty.Delete("/:id", ctrl.Delete)
}
