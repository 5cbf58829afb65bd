// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	courseModel "studenthub_backend/internals/features/courses/courses/model"
	materialModel "studenthub_backend/internals/features/courses/materials/model"
	commentModel "studenthub_backend/internals/features/discussions/comments/model"
	reportModel "studenthub_backend/internals/features/discussions/reports/model"
	authModel "studenthub_backend/internals/features/users/auth/model"
	userModel "studenthub_backend/internals/features/users/users/model"
)

// AutoMigrateAll applies the schema for every table this service owns.
// Gated behind DB_AUTOMIGRATE so production deployments can keep running
// managed migrations instead.
func AutoMigrateAll(db *gorm.DB) error {
	log.Println("[INFO] Running schema auto-migration...")
	return db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&courseModel.CourseModel{},
		&materialModel.MaterialModel{},
		&commentModel.CommentModel{},
		&reportModel.ReportModel{},
	)
}
