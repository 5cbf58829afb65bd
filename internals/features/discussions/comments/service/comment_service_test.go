// file: internals/features/discussions/comments/service/comment_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "studenthub_backend/internals/features/discussions/comments/model"
	"studenthub_backend/internals/features/discussions/comments/repository"
)

type mockCommentRepo struct {
	listByCourse  func(ctx context.Context, courseCode string) ([]model.CommentModel, error)
	findByID      func(ctx context.Context, id uuid.UUID) (*model.CommentModel, error)
	create        func(ctx context.Context, m *model.CommentModel) error
	deleteSubtree func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	courseExists  func(ctx context.Context, courseCode string) (bool, error)
}

func (m *mockCommentRepo) ListByCourse(ctx context.Context, courseCode string) ([]model.CommentModel, error) {
	return m.listByCourse(ctx, courseCode)
}
func (m *mockCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CommentModel, error) {
	return m.findByID(ctx, id)
}
func (m *mockCommentRepo) Create(ctx context.Context, cm *model.CommentModel) error {
	return m.create(ctx, cm)
}
func (m *mockCommentRepo) DeleteSubtree(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return m.deleteSubtree(ctx, id)
}
func (m *mockCommentRepo) CourseExists(ctx context.Context, courseCode string) (bool, error) {
	return m.courseExists(ctx, courseCode)
}

func newTestService(repo repository.CommentRepository) *commentService {
	return &commentService{repo: repo, state: NewThreadState()}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestCommentService_CreateRejectsEmptyContent(t *testing.T) {
	svc := newTestService(&mockCommentRepo{})

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.Create(context.Background(), CreateCommentInput{
			CourseCode: "CS401",
			AuthorID:   cid(200),
			Content:    content,
		})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	}
}

func TestCommentService_CreateUnknownCourse(t *testing.T) {
	svc := newTestService(&mockCommentRepo{
		courseExists: func(_ context.Context, _ string) (bool, error) { return false, nil },
	})

	_, err := svc.Create(context.Background(), CreateCommentInput{
		CourseCode: "NOPE1",
		AuthorID:   cid(200),
		Content:    "hello",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestCommentService_CreateRejectsCrossCourseParent(t *testing.T) {
	base := time.Now().UTC()
	parent := mkComment(1, nil, base)
	parent.CommentCourseCode = "MATH20"

	svc := newTestService(&mockCommentRepo{
		courseExists: func(_ context.Context, _ string) (bool, error) { return true, nil },
		findByID: func(_ context.Context, id uuid.UUID) (*model.CommentModel, error) {
			require.Equal(t, cid(1), id)
			return &parent, nil
		},
	})

	_, err := svc.Create(context.Background(), CreateCommentInput{
		CourseCode: "CS401",
		AuthorID:   cid(200),
		Content:    "reply into the wrong course",
		ParentID:   ptr(cid(1)),
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestCommentService_CreateRejectsMissingParent(t *testing.T) {
	svc := newTestService(&mockCommentRepo{
		courseExists: func(_ context.Context, _ string) (bool, error) { return true, nil },
		findByID: func(_ context.Context, _ uuid.UUID) (*model.CommentModel, error) {
			return nil, repository.ErrCommentNotFound
		},
	})

	_, err := svc.Create(context.Background(), CreateCommentInput{
		CourseCode: "CS401",
		AuthorID:   cid(200),
		Content:    "reply to nothing",
		ParentID:   ptr(cid(42)),
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestCommentService_CreateReply(t *testing.T) {
	base := time.Now().UTC()
	parent := mkComment(1, nil, base)

	var stored *model.CommentModel
	svc := newTestService(&mockCommentRepo{
		courseExists: func(_ context.Context, code string) (bool, error) {
			return code == "CS401", nil
		},
		findByID: func(_ context.Context, _ uuid.UUID) (*model.CommentModel, error) {
			return &parent, nil
		},
		create: func(_ context.Context, m *model.CommentModel) error {
			stored = m
			return nil
		},
	})

	out, err := svc.Create(context.Background(), CreateCommentInput{
		CourseCode: "CS401",
		AuthorID:   cid(200),
		Content:    "  a reply with padding  ",
		ParentID:   ptr(cid(1)),
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Same(t, stored, out)
	assert.Equal(t, "a reply with padding", stored.CommentContent)
	assert.Equal(t, "CS401", stored.CommentCourseCode)
	assert.Equal(t, cid(200), stored.CommentUserID)
	require.NotNil(t, stored.CommentParentID)
	assert.Equal(t, cid(1), *stored.CommentParentID)
}

func TestCommentService_DeleteCascadeCountsWholeSubtree(t *testing.T) {
	base := time.Now().UTC()
	root := mkComment(1, nil, base)

	// root plus three descendants
	removed := []uuid.UUID{cid(1), cid(2), cid(3), cid(4)}

	svc := newTestService(&mockCommentRepo{
		findByID: func(_ context.Context, _ uuid.UUID) (*model.CommentModel, error) {
			return &root, nil
		},
		deleteSubtree: func(_ context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			require.Equal(t, cid(1), id)
			return removed, nil
		},
	})

	n, err := svc.Delete(context.Background(), cid(1), root.CommentUserID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestCommentService_DeleteForbiddenForNonAuthor(t *testing.T) {
	base := time.Now().UTC()
	target := mkComment(1, nil, base) // author is cid(200)

	called := false
	svc := newTestService(&mockCommentRepo{
		findByID: func(_ context.Context, _ uuid.UUID) (*model.CommentModel, error) {
			return &target, nil
		},
		deleteSubtree: func(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
			called = true
			return []uuid.UUID{cid(1)}, nil
		},
	})

	_, err := svc.Delete(context.Background(), cid(1), cid(201), false)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	assert.False(t, called, "forbidden delete must never reach the store")

	// moderators and admins may remove other people's comments
	n, err := svc.Delete(context.Background(), cid(1), cid(201), true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCommentService_DeleteNotFound(t *testing.T) {
	svc := newTestService(&mockCommentRepo{
		findByID: func(_ context.Context, _ uuid.UUID) (*model.CommentModel, error) {
			return nil, repository.ErrCommentNotFound
		},
	})

	_, err := svc.Delete(context.Background(), cid(1), cid(200), false)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestCommentService_DeleteWhileInFlightConflicts(t *testing.T) {
	base := time.Now().UTC()
	target := mkComment(1, nil, base)

	entered := make(chan struct{})
	release := make(chan struct{})

	svc := newTestService(&mockCommentRepo{
		findByID: func(_ context.Context, _ uuid.UUID) (*model.CommentModel, error) {
			return &target, nil
		},
		deleteSubtree: func(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
			close(entered)
			<-release
			return []uuid.UUID{cid(1)}, nil
		},
	})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Delete(context.Background(), cid(1), target.CommentUserID, false)
		done <- err
	}()

	<-entered // first delete is now holding the guard

	_, err := svc.Delete(context.Background(), cid(1), target.CommentUserID, false)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	close(release)
	require.NoError(t, <-done)
}
