// file: internals/route/details/discussion_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentRoute "studenthub_backend/internals/features/discussions/comments/route"
	reportRoute "studenthub_backend/internals/features/discussions/reports/route"
)

func DiscussionUserRoutes(r fiber.Router, db *gorm.DB) {
	commentRoute.CommentUserRoutes(r, db)
	reportRoute.ReportUserRoutes(r, db)
}

func DiscussionAdminRoutes(r fiber.Router, db *gorm.DB) {
	commentRoute.CommentAdminRoutes(r, db)
	reportRoute.ReportAdminRoutes(r, db)
}
