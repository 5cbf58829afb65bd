// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: users
   ========================================================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Identity
	UserName     string  `gorm:"type:varchar(50);not null;unique;column:user_name" json:"user_name"`
	UserEmail    string  `gorm:"type:varchar(255);not null;unique;column:user_email" json:"user_email"`
	UserFullName *string `gorm:"type:varchar(100);column:user_full_name" json:"user_full_name,omitempty"`

	// Credentials (hash only; sign-in flow lives in the auth service)
	UserPasswordHash string `gorm:"type:text;not null;column:user_password_hash" json:"-"`

	// Authorization
	UserRole string `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`

	UserIsActive bool `gorm:"type:boolean;not null;default:true;column:user_is_active" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
