// file: internals/features/discussions/comments/controller/comment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	courseDto "studenthub_backend/internals/features/courses/courses/dto"
	dto "studenthub_backend/internals/features/discussions/comments/dto"
	service "studenthub_backend/internals/features/discussions/comments/service"
	helper "studenthub_backend/internals/helpers"
)

type CommentController struct {
	Service service.CommentService
}

func NewCommentController(svc service.CommentService) *CommentController {
	return &CommentController{Service: svc}
}

var validate = validator.New()

// =========================================================
// LIST - GET /courses/:code/comments?view=thread&collapsed=id,id
// =========================================================
// Default shape is the flat, chronologically ordered list. view=thread
// returns the nested reply tree; collapsed= hides the subtrees under the
// given comment ids (thread view only).
func (ctl *CommentController) ListByCourse(c *fiber.Ctx) error {
	code := courseDto.NormalizeCourseCode(c.Params("code"))

	if strings.EqualFold(strings.TrimSpace(c.Query("view")), "thread") {
		nodes, err := ctl.Service.Thread(c.Context(), code)
		if err != nil {
			return helper.FromFiberError(c, err)
		}

		if raw := strings.TrimSpace(c.Query("collapsed")); raw != "" {
			view := service.NewThreadState()
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := uuid.Parse(part)
				if err != nil {
					return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment ID in collapsed filter")
				}
				view.SetCollapsed(id, true)
			}
			nodes = view.HideCollapsed(nodes)
		}

		return helper.JsonOK(c, "Thread fetched successfully", dto.ToThreadNodeResponses(nodes))
	}

	rows, err := ctl.Service.ListByCourse(c.Context(), code)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Comments fetched successfully", dto.ToCommentResponses(rows), nil)
}

// =========================================================
// CREATE - POST /courses/:code/comments
// =========================================================
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	code := courseDto.NormalizeCourseCode(c.Params("code"))

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Create(c.Context(), service.CreateCommentInput{
		CourseCode: code,
		AuthorID:   userID,
		Content:    req.CommentContent,
		ParentID:   req.CommentParentID,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Comment created successfully", dto.ToCommentResponse(m))
}

// =========================================================
// DELETE - DELETE /comments/:id
// =========================================================
// Removes the comment and every nested reply. Author or staff only.
func (ctl *CommentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	if _, err := ctl.Service.Delete(c.Context(), id, userID, helper.IsStaff(c)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
