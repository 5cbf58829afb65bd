// file: internals/features/courses/materials/dto/material_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studenthub_backend/internals/constants"
	model "studenthub_backend/internals/features/courses/materials/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ==============================
   CREATE (POST /courses/:code/materials)
============================== */

type CreateMaterialRequest struct {
	MaterialTitle       string           `json:"material_title" validate:"required,max=200"`
	MaterialFileURL     string           `json:"material_file_url" validate:"required,url"`
	MaterialDescription *string          `json:"material_description" validate:"omitempty"`
	MaterialMeta        *json.RawMessage `json:"material_meta" validate:"omitempty"`
}

func (r *CreateMaterialRequest) ToModel(courseCode string, userID uuid.UUID) *model.MaterialModel {
	var meta datatypes.JSON
	if r.MaterialMeta != nil && len(*r.MaterialMeta) > 0 {
		meta = datatypes.JSON(*r.MaterialMeta)
	}

	fileURL := strings.TrimSpace(r.MaterialFileURL)

	return &model.MaterialModel{
		MaterialCourseCode:  courseCode,
		MaterialUserID:      userID,
		MaterialTitle:       strings.TrimSpace(r.MaterialTitle),
		MaterialFileURL:     fileURL,
		MaterialDescription: trimPtr(r.MaterialDescription),
		MaterialKind:        constants.DetectMaterialKindFromExt(fileURL),
		MaterialMeta:        meta,
	}
}

/* ==============================
   RESPONSES
============================== */

type MaterialResponse struct {
	MaterialID          uuid.UUID      `json:"material_id"`
	MaterialCourseCode  string         `json:"material_course_code"`
	MaterialUserID      uuid.UUID      `json:"material_user_id"`
	MaterialTitle       string         `json:"material_title"`
	MaterialFileURL     string         `json:"material_file_url"`
	MaterialDescription *string        `json:"material_description,omitempty"`
	MaterialKind        int            `json:"material_kind"`
	MaterialMeta        datatypes.JSON `json:"material_meta,omitempty"`
	MaterialCreatedAt   time.Time      `json:"material_created_at"`
}

func ToMaterialResponse(m *model.MaterialModel) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		MaterialID:          m.MaterialID,
		MaterialCourseCode:  m.MaterialCourseCode,
		MaterialUserID:      m.MaterialUserID,
		MaterialTitle:       m.MaterialTitle,
		MaterialFileURL:     m.MaterialFileURL,
		MaterialDescription: m.MaterialDescription,
		MaterialKind:        m.MaterialKind,
		MaterialMeta:        m.MaterialMeta,
		MaterialCreatedAt:   m.MaterialCreatedAt,
	}
}

func ToMaterialResponses(ms []model.MaterialModel) []*MaterialResponse {
	out := make([]*MaterialResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMaterialResponse(&ms[i]))
	}
	return out
}
