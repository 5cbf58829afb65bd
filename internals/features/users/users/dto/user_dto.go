// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "studenthub_backend/internals/features/users/users/model"
)

/* ==============================
   RESPONSES
============================== */

// Full profile, only returned to the account owner.
type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserFullName  *string   `json:"user_full_name,omitempty"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func FromModel(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserFullName:  m.UserFullName,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

// Public display subset (comment authors, reporters, moderation tables).
type UserLiteResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserFullName *string   `json:"user_full_name,omitempty"`
}

func ToUserLite(m *model.UserModel) *UserLiteResponse {
	if m == nil {
		return nil
	}
	return &UserLiteResponse{
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserFullName: m.UserFullName,
	}
}
