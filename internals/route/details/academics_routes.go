package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "facultyfeedback_backend/internals/features/academics/admins/route"
	facultyRoute "facultyfeedback_backend/internals/features/academics/faculty/route"
	studentRoute "facultyfeedback_backend/internals/features/academics/students/route"
	timetableRoute "facultyfeedback_backend/internals/features/academics/timetable/route"
)

// AcademicsPublicRoutes mounts the admin login endpoint.
func AcademicsPublicRoutes(api fiber.Router, db *gorm.DB) {
	adminRoute.AdminUserPublicRoutes(api, db)
}

// AcademicsAdminRoutes mounts roster management and the timetable tooling.
func AcademicsAdminRoutes(api fiber.Router, db *gorm.DB) {
	studentRoute.StudentAdminRoutes(api, db)
	facultyRoute.FacultyAdminRoutes(api, db)
	timetableRoute.TimetableAdminRoutes(api, db)
	adminRoute.AdminUserAdminRoutes(api, db)
}
