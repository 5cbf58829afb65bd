// file: internals/features/discussions/comments/dto/comment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"studenthub_backend/internals/features/discussions/comments/model"
	"studenthub_backend/internals/features/discussions/comments/service"
)

/* ==============================
   Requests
   ============================== */

type CreateCommentRequest struct {
	CommentContent  string     `json:"comment_content" validate:"required,max=5000"`
	CommentParentID *uuid.UUID `json:"comment_parent_id" validate:"omitempty"`
}

/* ==============================
   Responses
   ============================== */

type CommentResponse struct {
	CommentID         uuid.UUID  `json:"comment_id"`
	CommentCourseCode string     `json:"comment_course_code"`
	CommentUserID     uuid.UUID  `json:"comment_user_id"`
	CommentParentID   *uuid.UUID `json:"comment_parent_id,omitempty"`
	CommentContent    string     `json:"comment_content"`
	CommentCreatedAt  time.Time  `json:"comment_created_at"`
}

func ToCommentResponse(m *model.CommentModel) CommentResponse {
	return CommentResponse{
		CommentID:         m.CommentID,
		CommentCourseCode: m.CommentCourseCode,
		CommentUserID:     m.CommentUserID,
		CommentParentID:   m.CommentParentID,
		CommentContent:    m.CommentContent,
		CommentCreatedAt:  m.CommentCreatedAt,
	}
}

func ToCommentResponses(list []model.CommentModel) []CommentResponse {
	out := make([]CommentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCommentResponse(&list[i]))
	}
	return out
}

// ThreadNodeResponse is the nested shape returned by the thread view.
// Children are always present (possibly empty) so clients can recurse
// without nil checks.
type ThreadNodeResponse struct {
	Comment  CommentResponse      `json:"comment"`
	Depth    int                  `json:"depth"`
	Children []ThreadNodeResponse `json:"children"`
}

func ToThreadNodeResponse(n *service.ThreadNode) ThreadNodeResponse {
	return ThreadNodeResponse{
		Comment:  ToCommentResponse(n.Comment),
		Depth:    n.Depth,
		Children: ToThreadNodeResponses(n.Children),
	}
}

func ToThreadNodeResponses(nodes []*service.ThreadNode) []ThreadNodeResponse {
	out := make([]ThreadNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ToThreadNodeResponse(n))
	}
	return out
}
