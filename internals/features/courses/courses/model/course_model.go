// file: internals/features/courses/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: courses
   ========================================================= */

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// Identity ("CS401" style, stored uppercase)
	CourseCode string `gorm:"type:varchar(20);not null;unique;column:course_code" json:"course_code"`
	CourseName string `gorm:"type:varchar(160);not null;column:course_name" json:"course_name"`

	CourseDescription *string `gorm:"type:text;column:course_description" json:"course_description,omitempty"`
	CourseInstructor  *string `gorm:"type:varchar(100);column:course_instructor" json:"course_instructor,omitempty"`

	// Free-form filter tags ("core", "elective", "lab", ...)
	CourseTags pq.StringArray `gorm:"type:text[];column:course_tags" json:"course_tags,omitempty"`

	CourseIsActive bool `gorm:"type:boolean;not null;default:true;column:course_is_active" json:"course_is_active"`

	// Audit (soft delete: removing a course must not destroy its discussion history)
	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
