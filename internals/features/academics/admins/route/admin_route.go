package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "facultyfeedback_backend/internals/features/academics/admins/controller"
	"facultyfeedback_backend/internals/middlewares"
)

func AdminUserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admins := api.Group("/admins")
	admins.Get("/", ctrl.GetAll)
	admins.Post("/", ctrl.Create)
	admins.Delete("/:id", ctrl.Delete)
}

// AdminUserPublicRoutes mounts login behind the stricter limiter.
func AdminUserPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
