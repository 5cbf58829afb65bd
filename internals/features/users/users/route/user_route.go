// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "studenthub_backend/internals/features/users/users/controller"
)

// Mounted under /api/u
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.GetMe)
	users.Get("/:id", ctl.GetByID)
}
