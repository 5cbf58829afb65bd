// file: internals/features/discussions/comments/repository/comment_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studenthub_backend/internals/features/discussions/comments/model"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository is the persistence boundary for course comments.
type CommentRepository interface {
	ListByCourse(ctx context.Context, courseCode string) ([]model.CommentModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CommentModel, error)
	Create(ctx context.Context, m *model.CommentModel) error
	// DeleteSubtree removes the comment and every descendant in one statement
	// and returns the ids of all removed rows.
	DeleteSubtree(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	CourseExists(ctx context.Context, courseCode string) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListByCourse(ctx context.Context, courseCode string) ([]model.CommentModel, error) {
	var rows []model.CommentModel
	if err := r.db.WithContext(ctx).
		Where("comment_course_code = ?", courseCode).
		Order("comment_created_at ASC, comment_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CommentModel, error) {
	var m model.CommentModel
	if err := r.db.WithContext(ctx).
		First(&m, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *commentRepository) Create(ctx context.Context, m *model.CommentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// DeleteSubtree walks the reply tree with a recursive CTE and deletes the
// whole subtree in a single round trip. RETURNING gives back exactly the
// rows that went away, which the caller needs for cleanup and counting.
func (r *commentRepository) DeleteSubtree(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	const q = `
WITH RECURSIVE comment_tree AS (
    SELECT comment_id FROM comments WHERE comment_id = ?
    UNION ALL
    SELECT c.comment_id
    FROM comments c
    JOIN comment_tree ct ON c.comment_parent_id = ct.comment_id
)
DELETE FROM comments
WHERE comment_id IN (SELECT comment_id FROM comment_tree)
RETURNING comment_id`

	var removed []uuid.UUID
	if err := r.db.WithContext(ctx).Raw(q, id).Scan(&removed).Error; err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, ErrCommentNotFound
	}
	return removed, nil
}

func (r *commentRepository) CourseExists(ctx context.Context, courseCode string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Table("courses").
		Where("course_code = ? AND course_deleted_at IS NULL", courseCode).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
