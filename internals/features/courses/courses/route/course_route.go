// file: internals/features/courses/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub_backend/internals/constants"
	courseController "studenthub_backend/internals/features/courses/courses/controller"
	"studenthub_backend/internals/middlewares/auth"
)

// Mounted under /api/public
func AllCourseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Get("/", ctl.List)
	courses.Get("/:code", ctl.GetByCode)
}

// Mounted under /api/a
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)

	adminGuard := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("course management"),
		constants.AdminOnly,
	)

	courses := r.Group("/courses", adminGuard)
	courses.Post("/", ctl.Create)
	courses.Patch("/:code", ctl.Patch)
	courses.Delete("/:code", ctl.Delete)
}
