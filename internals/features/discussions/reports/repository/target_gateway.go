// file: internals/features/discussions/reports/repository/target_gateway.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	materialModel "studenthub_backend/internals/features/courses/materials/model"
	commentRepo "studenthub_backend/internals/features/discussions/comments/repository"
)

var ErrTargetNotFound = errors.New("report target not found")

// TargetSnapshot is the denormalized target extract stored on the report
// row at filing time. Reports outlive their targets, so the moderation
// list reads from here instead of joining live content.
type TargetSnapshot struct {
	TargetAuthorID uuid.UUID `json:"target_author_id"`
	CourseCode     string    `json:"course_code,omitempty"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Title          string    `json:"title,omitempty"`
}

func (s *TargetSnapshot) ToJSON() (datatypes.JSON, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// ParseSnapshot is lenient: pre-snapshot rows or unreadable payloads just
// yield ok=false and the list renders without author info.
func ParseSnapshot(raw datatypes.JSON) (*TargetSnapshot, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var s TargetSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

// TargetGateway adapts one reportable content kind to what moderation
// needs: a snapshot when the report is filed, a removal when it is
// reviewed.
type TargetGateway interface {
	Snapshot(ctx context.Context, id uuid.UUID) (*TargetSnapshot, error)
	// Remove deletes the target. Returns false when it was already gone,
	// which the caller treats as satisfied rather than as a failure.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

/* ==============================
   Comment targets
   ============================== */

type commentTargetGateway struct {
	comments commentRepo.CommentRepository
}

func NewCommentTargetGateway(comments commentRepo.CommentRepository) TargetGateway {
	return &commentTargetGateway{comments: comments}
}

func (g *commentTargetGateway) Snapshot(ctx context.Context, id uuid.UUID) (*TargetSnapshot, error) {
	m, err := g.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, commentRepo.ErrCommentNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	return &TargetSnapshot{
		TargetAuthorID: m.CommentUserID,
		CourseCode:     m.CommentCourseCode,
		Excerpt:        truncateRunes(m.CommentContent, 160),
	}, nil
}

func (g *commentTargetGateway) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := g.comments.DeleteSubtree(ctx, id); err != nil {
		if errors.Is(err, commentRepo.ErrCommentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

/* ==============================
   Material targets
   ============================== */

type materialTargetGateway struct {
	db *gorm.DB
}

func NewMaterialTargetGateway(db *gorm.DB) TargetGateway {
	return &materialTargetGateway{db: db}
}

func (g *materialTargetGateway) Snapshot(ctx context.Context, id uuid.UUID) (*TargetSnapshot, error) {
	var m materialModel.MaterialModel
	if err := g.db.WithContext(ctx).
		First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	return &TargetSnapshot{
		TargetAuthorID: m.MaterialUserID,
		CourseCode:     m.MaterialCourseCode,
		Title:          m.MaterialTitle,
	}, nil
}

func (g *materialTargetGateway) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	res := g.db.WithContext(ctx).
		Where("material_id = ?", id).
		Delete(&materialModel.MaterialModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
