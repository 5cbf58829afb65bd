// file: internals/route/details/course_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "studenthub_backend/internals/features/courses/courses/route"
	materialRoute "studenthub_backend/internals/features/courses/materials/route"
)

func CoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.AllCourseRoutes(r, db)
}

func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	materialRoute.MaterialUserRoutes(r, db)
}

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.CourseAdminRoutes(r, db)
	materialRoute.MaterialAdminRoutes(r, db)
}
