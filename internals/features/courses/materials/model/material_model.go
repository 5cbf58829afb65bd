// file: internals/features/courses/materials/model/material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: materials
   ========================================================= */

// Upload transport is handled by the storage service; rows here only
// register title + file URL + metadata for listing and moderation.
type MaterialModel struct {
	MaterialID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:material_id" json:"material_id"`

	MaterialCourseCode string    `gorm:"type:varchar(20);not null;index;column:material_course_code" json:"material_course_code"`
	MaterialUserID     uuid.UUID `gorm:"type:uuid;not null;column:material_user_id" json:"material_user_id"`

	MaterialTitle       string  `gorm:"type:varchar(200);not null;column:material_title" json:"material_title"`
	MaterialFileURL     string  `gorm:"type:text;not null;column:material_file_url" json:"material_file_url"`
	MaterialDescription *string `gorm:"type:text;column:material_description" json:"material_description,omitempty"`

	// Derived from the file URL extension (constants.DetectMaterialKindFromExt)
	MaterialKind int `gorm:"type:int;not null;default:99;column:material_kind" json:"material_kind"`

	// Size/mime/etc. as registered by the upload collaborator
	MaterialMeta datatypes.JSON `gorm:"type:jsonb;column:material_meta" json:"material_meta,omitempty"`

	// Audit (soft delete: a removed material stays readable for the report audit trail)
	MaterialCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:material_created_at" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:material_updated_at" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string { return "materials" }
