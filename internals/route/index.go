// file: internals/route/index.go
package routes

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthub_backend/internals/constants"
	helperAuth "studenthub_backend/internals/helpers/auth"
	"studenthub_backend/internals/middlewares/auth"
	routeDetails "studenthub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	jwtSecret := os.Getenv("JWT_SECRET")
	authGuard := auth.AuthJWT(auth.AuthJWTOpts{
		Secret: jwtSecret,
		BlacklistChecker: func(raw string) (bool, error) {
			return helperAuth.IsBlacklisted(context.Background(), db, raw, jwtSecret)
		},
		AllowCookieFallback: true,
	})

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up USER group (Auth)...")
	private := app.Group("/api/u", authGuard)

	log.Println("[INFO] Setting up STAFF group (Auth + RoleCheck)...")
	staff := app.Group("/api/a",
		authGuard,
		auth.OnlyRolesSlice(
			constants.RoleErrorStaff("staff endpoints"),
			constants.StaffRoles,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private, db)

	log.Println("[INFO] Mounting Course routes...")
	routeDetails.CoursePublicRoutes(public, db)
	routeDetails.CourseUserRoutes(private, db)
	routeDetails.CourseAdminRoutes(staff, db)

	log.Println("[INFO] Mounting Discussion routes...")
	routeDetails.DiscussionUserRoutes(private, db)
	routeDetails.DiscussionAdminRoutes(staff, db)
}
