// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "studenthub_backend/internals/features/users/auth/controller"
)

// Mounted under /api/u (the guard has already verified the token)
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctl.Logout)
}
