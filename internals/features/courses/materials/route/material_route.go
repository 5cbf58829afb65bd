// file: internals/features/courses/materials/route/material_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub_backend/internals/constants"
	materialController "studenthub_backend/internals/features/courses/materials/controller"
	"studenthub_backend/internals/middlewares/auth"
)

// Mounted under /api/u
func MaterialUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)

	courses := r.Group("/courses")
	courses.Get("/:code/materials", ctl.ListByCourse)
	courses.Post("/:code/materials", ctl.Create)

	materials := r.Group("/materials")
	materials.Get("/:id", ctl.GetByID)
	materials.Delete("/:id", ctl.Delete)
}

// Mounted under /api/a
func MaterialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)

	staffGuard := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("material moderation"),
		constants.StaffRoles,
	)

	materials := r.Group("/materials", staffGuard)
	materials.Delete("/:id", ctl.Delete)
}
