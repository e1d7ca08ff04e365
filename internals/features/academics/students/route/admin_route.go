package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "facultyfeedback_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.GetAll)
	students.Post("/", ctrl.Create)
	students.Post("/bulk", ctrl.BulkImport)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
