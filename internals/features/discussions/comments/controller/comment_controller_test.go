// file: internals/features/discussions/comments/controller/comment_controller_test.go
package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "studenthub_backend/internals/features/discussions/comments/model"
	service "studenthub_backend/internals/features/discussions/comments/service"
)

type mockCommentService struct {
	listByCourse func(ctx context.Context, courseCode string) ([]model.CommentModel, error)
	thread       func(ctx context.Context, courseCode string) ([]*service.ThreadNode, error)
	create       func(ctx context.Context, in service.CreateCommentInput) (*model.CommentModel, error)
	deleteFn     func(ctx context.Context, id, actorID uuid.UUID, isStaff bool) (int64, error)
}

func (m *mockCommentService) ListByCourse(ctx context.Context, courseCode string) ([]model.CommentModel, error) {
	return m.listByCourse(ctx, courseCode)
}
func (m *mockCommentService) Thread(ctx context.Context, courseCode string) ([]*service.ThreadNode, error) {
	return m.thread(ctx, courseCode)
}
func (m *mockCommentService) Create(ctx context.Context, in service.CreateCommentInput) (*model.CommentModel, error) {
	return m.create(ctx, in)
}
func (m *mockCommentService) Delete(ctx context.Context, id, actorID uuid.UUID, isStaff bool) (int64, error) {
	return m.deleteFn(ctx, id, actorID, isStaff)
}

var (
	testUserID   = uuid.MustParse("6f1c63aa-0000-4000-8000-000000000001")
	testParentID = uuid.MustParse("6f1c63aa-0000-4000-8000-000000000002")
)

func newTestApp(svc service.CommentService, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		c.Locals("role", role)
		return c.Next()
	})

	ctl := NewCommentController(svc)
	app.Get("/courses/:code/comments", ctl.ListByCourse)
	app.Post("/courses/:code/comments", ctl.Create)
	app.Delete("/comments/:id", ctl.Delete)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func sampleComment(content string) model.CommentModel {
	return model.CommentModel{
		CommentID:         uuid.New(),
		CommentCourseCode: "CS401",
		CommentUserID:     testUserID,
		CommentContent:    content,
		CommentCreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCommentController_ListFlat(t *testing.T) {
	rows := []model.CommentModel{sampleComment("first"), sampleComment("second")}
	app := newTestApp(&mockCommentService{
		listByCourse: func(_ context.Context, code string) ([]model.CommentModel, error) {
			assert.Equal(t, "CS401", code)
			return rows, nil
		},
	}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses/cs401/comments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestCommentController_ListThreadView(t *testing.T) {
	root := sampleComment("root")
	reply := sampleComment("reply")
	reply.CommentParentID = &root.CommentID

	nodes := []*service.ThreadNode{
		{
			Comment: &root,
			Depth:   0,
			Children: []*service.ThreadNode{
				{Comment: &reply, Depth: 1},
			},
		},
	}

	app := newTestApp(&mockCommentService{
		thread: func(_ context.Context, _ string) ([]*service.ThreadNode, error) {
			return nodes, nil
		},
	}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses/CS401/comments?view=thread", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), first["depth"])
	children, ok := first["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 1)
}

func TestCommentController_ListThreadCollapsed(t *testing.T) {
	root := sampleComment("root")
	reply := sampleComment("reply")
	reply.CommentParentID = &root.CommentID

	app := newTestApp(&mockCommentService{
		thread: func(_ context.Context, _ string) ([]*service.ThreadNode, error) {
			return []*service.ThreadNode{
				{
					Comment: &root,
					Depth:   0,
					Children: []*service.ThreadNode{
						{Comment: &reply, Depth: 1},
					},
				},
			}, nil
		},
	}, "student")

	target := "/courses/CS401/comments?view=thread&collapsed=" + root.CommentID.String()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	children, ok := first["children"].([]any)
	require.True(t, ok)
	assert.Empty(t, children, "collapsed root must hide its replies")
}

func TestCommentController_ListThreadBadCollapsedID(t *testing.T) {
	app := newTestApp(&mockCommentService{
		thread: func(_ context.Context, _ string) ([]*service.ThreadNode, error) {
			return nil, nil
		},
	}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses/CS401/comments?view=thread&collapsed=not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCommentController_ListUnknownCourse(t *testing.T) {
	app := newTestApp(&mockCommentService{
		listByCourse: func(_ context.Context, _ string) ([]model.CommentModel, error) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		},
	}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses/NOPE1/comments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestCommentController_Create(t *testing.T) {
	var got service.CreateCommentInput
	app := newTestApp(&mockCommentService{
		create: func(_ context.Context, in service.CreateCommentInput) (*model.CommentModel, error) {
			got = in
			m := sampleComment(in.Content)
			m.CommentParentID = in.ParentID
			return &m, nil
		},
	}, "student")

	payload := `{"comment_content":"does anyone have the slides?","comment_parent_id":"` + testParentID.String() + `"}`
	req := httptest.NewRequest(fiber.MethodPost, "/courses/cs401/comments", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.Equal(t, "CS401", got.CourseCode, "course code comes from the path, uppercased")
	assert.Equal(t, testUserID, got.AuthorID, "author comes from the token")
	require.NotNil(t, got.ParentID)
	assert.Equal(t, testParentID, *got.ParentID)
}

func TestCommentController_CreateRequiresAuth(t *testing.T) {
	// no auth middleware, so no user_id local
	app := fiber.New()
	ctl := NewCommentController(&mockCommentService{})
	app.Post("/courses/:code/comments", ctl.Create)

	req := httptest.NewRequest(fiber.MethodPost, "/courses/CS401/comments", bytes.NewBufferString(`{"comment_content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCommentController_CreateValidation(t *testing.T) {
	app := newTestApp(&mockCommentService{}, "student")

	req := httptest.NewRequest(fiber.MethodPost, "/courses/CS401/comments", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
}

func TestCommentController_CreateServiceErrorPassesThrough(t *testing.T) {
	app := newTestApp(&mockCommentService{
		create: func(_ context.Context, _ service.CreateCommentInput) (*model.CommentModel, error) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Parent comment does not belong to this course")
		},
	}, "student")

	req := httptest.NewRequest(fiber.MethodPost, "/courses/CS401/comments", bytes.NewBufferString(`{"comment_content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Parent comment does not belong to this course", body["message"])
}

func TestCommentController_Delete(t *testing.T) {
	id := uuid.New()
	app := newTestApp(&mockCommentService{
		deleteFn: func(_ context.Context, gotID, actorID uuid.UUID, isStaff bool) (int64, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, testUserID, actorID)
			assert.False(t, isStaff)
			return 3, nil
		},
	}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/comments/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCommentController_DeleteStaffFlag(t *testing.T) {
	id := uuid.New()
	app := newTestApp(&mockCommentService{
		deleteFn: func(_ context.Context, _, _ uuid.UUID, isStaff bool) (int64, error) {
			assert.True(t, isStaff)
			return 1, nil
		},
	}, "moderator")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/comments/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCommentController_DeleteBadID(t *testing.T) {
	app := newTestApp(&mockCommentService{}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/comments/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCommentController_DeleteForbidden(t *testing.T) {
	id := uuid.New()
	app := newTestApp(&mockCommentService{
		deleteFn: func(_ context.Context, _, _ uuid.UUID, _ bool) (int64, error) {
			return 0, fiber.NewError(fiber.StatusForbidden, "Only the author or staff may delete this comment")
		},
	}, "student")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/comments/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "FORBIDDEN", body["error_code"])
}
