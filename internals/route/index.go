package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "facultyfeedback_backend/internals/configs"
	constants "facultyfeedback_backend/internals/constants"
	identity "facultyfeedback_backend/internals/middlewares/identity"
	routeDetails "facultyfeedback_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes wires the four surface groups:
//
//	/api/public  no identity (admin login, per-form question list)
//	/api/s       student surface (pending forms, submission)
//	/api/f       faculty surface (own report; admins may peek)
//	/api/a       admin surface (catalog, forms, rosters, timetable, reports)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	cfg := configs.NewAuthConfig()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AcademicsPublicRoutes(public, db)
	routeDetails.FeedbackPublicRoutes(public, db)

	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/s",
		identity.Resolve(db, cfg),
		identity.RequireRoles(constants.RoleStudent),
	)
	routeDetails.FeedbackStudentRoutes(student, db)

	log.Println("[INFO] Setting up FACULTY group...")
	faculty := app.Group("/api/f",
		identity.Resolve(db, cfg),
		identity.RequireRoles(constants.RoleFaculty, constants.RoleAdmin),
	)
	routeDetails.FeedbackFacultyRoutes(faculty, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		identity.Resolve(db, cfg),
		identity.RequireRoles(constants.RoleAdmin),
	)
	routeDetails.FeedbackAdminRoutes(admin, db)
	routeDetails.AcademicsAdminRoutes(admin, db)
}
