package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	responseController "facultyfeedback_backend/internals/features/feedback/responses/controller"
)

func ResponseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := responseController.NewReportController(db)

	api.Get("/forms/:id/responses", ctrl.GetFormResponses)
	api.Get("/forms/:id/report", ctrl.GetFormReport)
	api.Get("/reports/faculty", ctrl.GetFacultyRanking)
	api.Get("/reports/export", ctrl.ExportReports)
	api.Delete("/responses/:id", ctrl.DeleteResponse)
}

// ResponseFacultyRoutes exposes the faculty member's own report.
func ResponseFacultyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := responseController.NewReportController(db)
	api.Get("/report", ctrl.GetOwnReport)
}
