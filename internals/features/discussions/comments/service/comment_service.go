// file: internals/features/discussions/comments/service/comment_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studenthub_backend/internals/features/discussions/comments/model"
	"studenthub_backend/internals/features/discussions/comments/repository"
)

// CreateCommentInput carries everything needed to post a comment or reply.
// AuthorID comes from the access token, never from the request body.
type CreateCommentInput struct {
	CourseCode string
	AuthorID   uuid.UUID
	Content    string
	ParentID   *uuid.UUID
}

type CommentService interface {
	ListByCourse(ctx context.Context, courseCode string) ([]model.CommentModel, error)
	Thread(ctx context.Context, courseCode string) ([]*ThreadNode, error)
	Create(ctx context.Context, in CreateCommentInput) (*model.CommentModel, error)
	// Delete removes the comment and its whole reply subtree. The returned
	// count includes the comment itself.
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, isStaff bool) (int64, error)
}

type commentService struct {
	repo  repository.CommentRepository
	state *ThreadState
}

// deleteState is process-wide so the in-flight delete guard holds no matter
// which route group mounted the handler.
var deleteState = NewThreadState()

func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{
		repo:  repo,
		state: deleteState,
	}
}

func (s *commentService) ListByCourse(ctx context.Context, courseCode string) ([]model.CommentModel, error) {
	ok, err := s.repo.CourseExists(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	return s.repo.ListByCourse(ctx, courseCode)
}

func (s *commentService) Thread(ctx context.Context, courseCode string) ([]*ThreadNode, error) {
	rows, err := s.ListByCourse(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	return BuildThread(rows), nil
}

func (s *commentService) Create(ctx context.Context, in CreateCommentInput) (*model.CommentModel, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Comment content must not be empty")
	}

	ok, err := s.repo.CourseExists(ctx, in.CourseCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	if in.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *in.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Parent comment not found")
			}
			return nil, err
		}
		if parent.CommentCourseCode != in.CourseCode {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Parent comment does not belong to this course")
		}
	}

	m := &model.CommentModel{
		CommentCourseCode: in.CourseCode,
		CommentUserID:     in.AuthorID,
		CommentParentID:   in.ParentID,
		CommentContent:    content,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, isStaff bool) (int64, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Comment not found")
		}
		return 0, err
	}

	if m.CommentUserID != actorID && !isStaff {
		return 0, fiber.NewError(fiber.StatusForbidden, "Only the author or staff may delete this comment")
	}

	// Guard against a double submit while the first delete is still running.
	if !s.state.BeginDelete(id) {
		return 0, fiber.NewError(fiber.StatusConflict, "Delete already in progress for this comment")
	}
	defer s.state.EndDelete(id)

	removed, err := s.repo.DeleteSubtree(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			// Row vanished between the read and the delete.
			return 0, fiber.NewError(fiber.StatusNotFound, "Comment not found")
		}
		return 0, err
	}

	for _, rid := range removed {
		s.state.Forget(rid)
	}
	return int64(len(removed)), nil
}
