// file: internals/features/discussions/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub_backend/internals/constants"
	commentRepo "studenthub_backend/internals/features/discussions/comments/repository"
	reportController "studenthub_backend/internals/features/discussions/reports/controller"
	"studenthub_backend/internals/features/discussions/reports/model"
	"studenthub_backend/internals/features/discussions/reports/repository"
	"studenthub_backend/internals/features/discussions/reports/service"
	"studenthub_backend/internals/middlewares"
	"studenthub_backend/internals/middlewares/auth"
)

func newController(db *gorm.DB) *reportController.ReportController {
	svc := service.NewModerationService(
		repository.NewReportRepository(db),
		map[model.ReportTargetType]repository.TargetGateway{
			model.TargetComment:  repository.NewCommentTargetGateway(commentRepo.NewCommentRepository(db)),
			model.TargetMaterial: repository.NewMaterialTargetGateway(db),
		},
		repository.NewUserDirectory(db),
	)
	return reportController.NewReportController(svc)
}

// Mounted under /api/u
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	reports := r.Group("/reports")
	reports.Post("/", middlewares.ReportRateLimiter(), ctl.File)
}

// Mounted under /api/a
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	staffGuard := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("the moderation queue"),
		constants.StaffRoles,
	)

	reports := r.Group("/reports", staffGuard)
	reports.Get("/", ctl.List)
	reports.Put("/:id", ctl.Process)
	reports.Patch("/:id", ctl.Process)
}
