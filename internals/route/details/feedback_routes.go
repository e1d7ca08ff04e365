package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formRoute "facultyfeedback_backend/internals/features/feedback/forms/route"
	questionRoute "facultyfeedback_backend/internals/features/feedback/questions/route"
	responseRoute "facultyfeedback_backend/internals/features/feedback/responses/route"
)

// FeedbackPublicRoutes mounts the endpoints that work without identity:
// the question list a student sees before signing in.
func FeedbackPublicRoutes(api fiber.Router, db *gorm.DB) {
	formRoute.FormPublicRoutes(api, db)
}

// FeedbackStudentRoutes mounts pending-form listing and submission.
func FeedbackStudentRoutes(api fiber.Router, db *gorm.DB) {
	formRoute.FormUserRoutes(api, db)
	responseRoute.ResponseUserRoutes(api, db)
}

// FeedbackFacultyRoutes mounts the self-service report.
func FeedbackFacultyRoutes(api fiber.Router, db *gorm.DB) {
	responseRoute.ResponseFacultyRoutes(api, db)
}

// FeedbackAdminRoutes mounts catalog management, form lifecycle and reports.
func FeedbackAdminRoutes(api fiber.Router, db *gorm.DB) {
	questionRoute.QuestionAdminRoutes(api, db)
	formRoute.FormAdminRoutes(api, db)
	responseRoute.ResponseAdminRoutes(api, db)
}
