// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	course "studenthub_backend/internals/seeds/courses"
	discussion "studenthub_backend/internals/seeds/discussions"
	user "studenthub_backend/internals/seeds/users"
)

// RunAllSeeds loads the demo data set. Every seeder skips rows that
// already exist, so running it against a non-empty database is safe.
func RunAllSeeds(db *gorm.DB) {
	user.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	course.SeedCoursesFromJSON(db, "internals/seeds/courses/data_courses.json")
	discussion.SeedCommentsFromJSON(db, "internals/seeds/discussions/data_comments.json")
}
