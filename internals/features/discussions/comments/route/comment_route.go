// file: internals/features/discussions/comments/route/comment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub_backend/internals/constants"
	commentController "studenthub_backend/internals/features/discussions/comments/controller"
	"studenthub_backend/internals/features/discussions/comments/repository"
	"studenthub_backend/internals/features/discussions/comments/service"
	"studenthub_backend/internals/middlewares"
	"studenthub_backend/internals/middlewares/auth"
)

// Mounted under /api/u
func CommentUserRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewCommentService(repository.NewCommentRepository(db))
	ctl := commentController.NewCommentController(svc)

	courses := r.Group("/courses")
	courses.Get("/:code/comments", ctl.ListByCourse)
	courses.Post("/:code/comments", middlewares.CommentRateLimiter(), ctl.Create)

	comments := r.Group("/comments")
	comments.Delete("/:id", ctl.Delete)
}

// Mounted under /api/a
func CommentAdminRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewCommentService(repository.NewCommentRepository(db))
	ctl := commentController.NewCommentController(svc)

	staffGuard := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("comment moderation"),
		constants.StaffRoles,
	)

	comments := r.Group("/comments", staffGuard)
	comments.Delete("/:id", ctl.Delete)
}
