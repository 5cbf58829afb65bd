// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "studenthub_backend/internals/features/users/auth/route"
	userRoute "studenthub_backend/internals/features/users/users/route"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(r, db)
	userRoute.UserUserRoutes(r, db)
}
