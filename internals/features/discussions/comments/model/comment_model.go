// file: internals/features/discussions/comments/model/comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: comments
   ========================================================= */

// Flat comment rows; the thread shape is derived, never stored.
// Deletion is hard and cascades over the whole reply subtree, so a row
// either exists in full or is gone — there is no half-deleted state.
type CommentModel struct {
	CommentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:comment_id" json:"comment_id"`

	CommentCourseCode string    `gorm:"type:varchar(20);not null;index;column:comment_course_code" json:"comment_course_code"`
	CommentUserID     uuid.UUID `gorm:"type:uuid;not null;column:comment_user_id" json:"comment_user_id"`

	// Self-reference; parents always pre-date their replies, which keeps
	// the graph acyclic by construction.
	CommentParentID *uuid.UUID `gorm:"type:uuid;index;column:comment_parent_id" json:"comment_parent_id,omitempty"`

	CommentContent string `gorm:"type:text;not null;column:comment_content" json:"comment_content"`

	CommentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:comment_created_at" json:"comment_created_at"`
}

func (CommentModel) TableName() string { return "comments" }
