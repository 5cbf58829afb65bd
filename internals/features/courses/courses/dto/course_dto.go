// file: internals/features/courses/courses/dto/course_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/lib/pq"

	model "studenthub_backend/internals/features/courses/courses/model"
)

/* =========================================================
   Helpers
========================================================= */

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

// NormalizeCourseCode uppercases and trims a course code ("cs401" → "CS401").
func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

/*
Tri-state field for PATCH:
- Absent : not updated
- null   : set column to NULL
- value  : set to value
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

/* =========================================================
   CREATE (POST /courses)
========================================================= */

type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=20,alphanum"`
	CourseName string `json:"course_name" validate:"required,max=160"`

	CourseDescription *string  `json:"course_description" validate:"omitempty"`
	CourseInstructor  *string  `json:"course_instructor" validate:"omitempty,max=100"`
	CourseTags        []string `json:"course_tags" validate:"omitempty,dive,max=40"`

	CourseIsActive *bool `json:"course_is_active" validate:"omitempty"`
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	isActive := true
	if r.CourseIsActive != nil {
		isActive = *r.CourseIsActive
	}

	var tags pq.StringArray
	for _, t := range r.CourseTags {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, strings.ToLower(t))
		}
	}

	return &model.CourseModel{
		CourseCode:        NormalizeCourseCode(r.CourseCode),
		CourseName:        strings.TrimSpace(r.CourseName),
		CourseDescription: trimPtr(r.CourseDescription),
		CourseInstructor:  trimPtr(r.CourseInstructor),
		CourseTags:        tags,
		CourseIsActive:    isActive,
	}
}

/* =========================================================
   PATCH (PATCH /courses/:code)
========================================================= */

type PatchCourseRequest struct {
	CourseName        UpdateField[string]   `json:"course_name"`
	CourseDescription UpdateField[string]   `json:"course_description"`
	CourseInstructor  UpdateField[string]   `json:"course_instructor"`
	CourseTags        UpdateField[[]string] `json:"course_tags"`
	CourseIsActive    UpdateField[bool]     `json:"course_is_active"`
}

// ToUpdates converts the PATCH payload into a map for GORM .Updates(...)
func (p *PatchCourseRequest) ToUpdates() map[string]any {
	u := make(map[string]any, 5)

	if p.CourseName.ShouldUpdate() && !p.CourseName.IsNull() {
		if n := strings.TrimSpace(p.CourseName.Val()); n != "" {
			u["course_name"] = n
		}
	}
	if p.CourseDescription.ShouldUpdate() {
		if p.CourseDescription.IsNull() {
			u["course_description"] = nil
		} else {
			if d := strings.TrimSpace(p.CourseDescription.Val()); d == "" {
				u["course_description"] = nil
			} else {
				u["course_description"] = d
			}
		}
	}
	if p.CourseInstructor.ShouldUpdate() {
		if p.CourseInstructor.IsNull() {
			u["course_instructor"] = nil
		} else {
			if i := strings.TrimSpace(p.CourseInstructor.Val()); i == "" {
				u["course_instructor"] = nil
			} else {
				u["course_instructor"] = i
			}
		}
	}
	if p.CourseTags.ShouldUpdate() {
		if p.CourseTags.IsNull() {
			u["course_tags"] = nil
		} else {
			var tags pq.StringArray
			for _, t := range p.CourseTags.Val() {
				t = strings.TrimSpace(t)
				if t != "" {
					tags = append(tags, strings.ToLower(t))
				}
			}
			u["course_tags"] = tags
		}
	}
	if p.CourseIsActive.ShouldUpdate() && !p.CourseIsActive.IsNull() {
		u["course_is_active"] = p.CourseIsActive.Val()
	}

	return u
}

/* =========================================================
   RESPONSES
========================================================= */

type CourseResponse struct {
	CourseID          string    `json:"course_id"`
	CourseCode        string    `json:"course_code"`
	CourseName        string    `json:"course_name"`
	CourseDescription *string   `json:"course_description,omitempty"`
	CourseInstructor  *string   `json:"course_instructor,omitempty"`
	CourseTags        []string  `json:"course_tags,omitempty"`
	CourseIsActive    bool      `json:"course_is_active"`
	CourseCreatedAt   time.Time `json:"course_created_at"`
	CourseUpdatedAt   time.Time `json:"course_updated_at"`
}

func ToCourseResponse(m *model.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	return &CourseResponse{
		CourseID:          m.CourseID.String(),
		CourseCode:        m.CourseCode,
		CourseName:        m.CourseName,
		CourseDescription: m.CourseDescription,
		CourseInstructor:  m.CourseInstructor,
		CourseTags:        m.CourseTags,
		CourseIsActive:    m.CourseIsActive,
		CourseCreatedAt:   m.CourseCreatedAt,
		CourseUpdatedAt:   m.CourseUpdatedAt,
	}
}

func ToCourseResponses(ms []model.CourseModel) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCourseResponse(&ms[i]))
	}
	return out
}
