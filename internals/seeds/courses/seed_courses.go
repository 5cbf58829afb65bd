// file: internals/seeds/courses/seed_courses.go
package course

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"studenthub_backend/internals/features/courses/courses/model"
)

type CourseSeed struct {
	CourseCode        string   `json:"course_code"`
	CourseName        string   `json:"course_name"`
	CourseDescription *string  `json:"course_description"`
	CourseInstructor  *string  `json:"course_instructor"`
	CourseTags        []string `json:"course_tags"`
	CourseIsActive    bool     `json:"course_is_active"`
}

func SeedCoursesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading course seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var seeds []CourseSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, s := range seeds {
		code := strings.ToUpper(strings.TrimSpace(s.CourseCode))

		var existing model.CourseModel
		if err := db.Where("course_code = ?", code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Course '%s' already exists, skipped.", code)
			continue
		}

		tags := make(pq.StringArray, 0, len(s.CourseTags))
		for _, tag := range s.CourseTags {
			tags = append(tags, strings.ToLower(strings.TrimSpace(tag)))
		}

		newCourse := model.CourseModel{
			CourseCode:        code,
			CourseName:        s.CourseName,
			CourseDescription: s.CourseDescription,
			CourseInstructor:  s.CourseInstructor,
			CourseTags:        tags,
			CourseIsActive:    s.CourseIsActive,
		}
		if err := db.Create(&newCourse).Error; err != nil {
			log.Printf("❌ Failed to insert course '%s': %v", code, err)
			continue
		}
		log.Printf("✅ Course '%s' inserted.", code)
	}
}
