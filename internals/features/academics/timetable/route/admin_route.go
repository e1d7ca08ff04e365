package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableController "facultyfeedback_backend/internals/features/academics/timetable/controller"
)

func TimetableAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := timetableController.NewTimetableController(db)
	imgCtrl := timetableController.NewTimetableImageController(db)

	timetable := api.Group("/timetable")
	timetable.Get("/entries", ctrl.GetAll)
	timetable.Post("/entries", ctrl.Create)
	timetable.Put("/entries/:id", ctrl.Update)
	timetable.Delete("/entries/:id", ctrl.Delete)

	timetable.Post("/import", ctrl.ImportCSV)
	timetable.Post("/import-sheet", ctrl.ImportSheet)
	timetable.Get("/export", ctrl.ExportCSV)
	timetable.Post("/extract", ctrl.Extract)

	timetable.Post("/images", imgCtrl.Upload)
	timetable.Get("/images", imgCtrl.GetAll)
	timetable.Get("/images/:id/content", imgCtrl.GetContent)
	timetable.Delete("/images/:id", imgCtrl.Delete)
}
