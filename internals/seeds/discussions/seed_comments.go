// file: internals/seeds/discussions/seed_comments.go
package discussion

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	commentModel "studenthub_backend/internals/features/discussions/comments/model"
	userModel "studenthub_backend/internals/features/users/users/model"
)

// CommentSeed uses local refs so replies can point at parents before any
// uuid exists. Rows must be listed parents-first.
type CommentSeed struct {
	Ref        string  `json:"ref"`
	ParentRef  *string `json:"parent_ref"`
	CourseCode string  `json:"course_code"`
	UserName   string  `json:"user_name"`
	Content    string  `json:"content"`
}

func SeedCommentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading comment seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var seeds []CommentSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}
	if len(seeds) == 0 {
		log.Println("ℹ️ No comment seed rows, skipped.")
		return
	}

	// idempotency: seed threads only into still-empty courses
	seeded := map[string]bool{}
	for _, s := range seeds {
		if _, checked := seeded[s.CourseCode]; checked {
			continue
		}
		var n int64
		if err := db.Model(&commentModel.CommentModel{}).
			Where("comment_course_code = ?", s.CourseCode).
			Count(&n).Error; err != nil {
			log.Fatalf("❌ Failed to check existing comments: %v", err)
		}
		seeded[s.CourseCode] = n > 0
		if n > 0 {
			log.Printf("ℹ️ Course '%s' already has comments, its thread seed is skipped.", s.CourseCode)
		}
	}

	userIDs := map[string]uuid.UUID{}
	refIDs := map[string]uuid.UUID{}

	for _, s := range seeds {
		if seeded[s.CourseCode] {
			continue
		}

		authorID, ok := userIDs[s.UserName]
		if !ok {
			var u userModel.UserModel
			if err := db.Where("user_name = ?", s.UserName).First(&u).Error; err != nil {
				log.Printf("❌ Seed user '%s' not found, comment '%s' skipped.", s.UserName, s.Ref)
				continue
			}
			authorID = u.UserID
			userIDs[s.UserName] = authorID
		}

		var parentID *uuid.UUID
		if s.ParentRef != nil {
			pid, ok := refIDs[*s.ParentRef]
			if !ok {
				log.Printf("❌ Parent ref '%s' unresolved, comment '%s' skipped.", *s.ParentRef, s.Ref)
				continue
			}
			parentID = &pid
		}

		m := commentModel.CommentModel{
			CommentCourseCode: s.CourseCode,
			CommentUserID:     authorID,
			CommentParentID:   parentID,
			CommentContent:    s.Content,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Failed to insert comment '%s': %v", s.Ref, err)
			continue
		}
		refIDs[s.Ref] = m.CommentID
	}

	log.Printf("✅ Inserted %d seed comments.", len(refIDs))
}
