// file: internals/features/discussions/reports/dto/report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"studenthub_backend/internals/features/discussions/reports/model"
	"studenthub_backend/internals/features/discussions/reports/repository"
	"studenthub_backend/internals/features/discussions/reports/service"
	userDto "studenthub_backend/internals/features/users/users/dto"
)

/* ==============================
   Requests
   ============================== */

type CreateReportRequest struct {
	ReportTargetType string    `json:"report_target_type" validate:"required,oneof=comment material"`
	ReportTargetID   uuid.UUID `json:"report_target_id" validate:"required"`
	ReportReason     string    `json:"report_reason" validate:"required,oneof=spam inappropriate harassment hate_speech misinformation copyright outdated duplicate quality other"`
	ReportDetails    *string   `json:"report_details" validate:"omitempty,max=2000"`
}

func (r *CreateReportRequest) ToInput(reporterID uuid.UUID) service.FileReportInput {
	return service.FileReportInput{
		TargetType: model.ReportTargetType(r.ReportTargetType),
		TargetID:   r.ReportTargetID,
		ReporterID: reporterID,
		Reason:     model.ReportReason(r.ReportReason),
		Details:    r.ReportDetails,
	}
}

type ProcessReportRequest struct {
	ReportAction string `json:"report_action" validate:"required,oneof=reviewed dismissed"`
}

/* ==============================
   Responses
   ============================== */

// ReportTargetInfo is the snapshot extract shown in the moderation table;
// it stays renderable after the target content is deleted.
type ReportTargetInfo struct {
	CourseCode string `json:"course_code,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
	Title      string `json:"title,omitempty"`
}

type ReportResponse struct {
	ReportID          uuid.UUID  `json:"report_id"`
	ReportTargetType  string     `json:"report_target_type"`
	ReportTargetID    uuid.UUID  `json:"report_target_id"`
	ReportReporterID  uuid.UUID  `json:"report_reporter_id"`
	ReportReason      string     `json:"report_reason"`
	ReportDetails     *string    `json:"report_details,omitempty"`
	ReportStatus      string     `json:"report_status"`
	ReportProcessedBy *uuid.UUID `json:"report_processed_by,omitempty"`
	ReportCreatedAt   time.Time  `json:"report_created_at"`
	ReportUpdatedAt   time.Time  `json:"report_updated_at"`

	ReportTarget *ReportTargetInfo         `json:"report_target,omitempty"`
	Reporter     *userDto.UserLiteResponse `json:"reporter,omitempty"`
	TargetAuthor *userDto.UserLiteResponse `json:"target_author,omitempty"`
}

func ToReportResponse(m *model.ReportModel) ReportResponse {
	resp := ReportResponse{
		ReportID:          m.ReportID,
		ReportTargetType:  string(m.ReportTargetType),
		ReportTargetID:    m.ReportTargetID,
		ReportReporterID:  m.ReportReporterID,
		ReportReason:      string(m.ReportReason),
		ReportDetails:     m.ReportDetails,
		ReportStatus:      string(m.ReportStatus),
		ReportProcessedBy: m.ReportProcessedBy,
		ReportCreatedAt:   m.ReportCreatedAt,
		ReportUpdatedAt:   m.ReportUpdatedAt,
	}
	if snap, ok := repository.ParseSnapshot(m.ReportTargetSnapshot); ok {
		resp.ReportTarget = &ReportTargetInfo{
			CourseCode: snap.CourseCode,
			Excerpt:    snap.Excerpt,
			Title:      snap.Title,
		}
	}
	return resp
}

func ToEnrichedReportResponse(e *service.EnrichedReport) ReportResponse {
	resp := ToReportResponse(&e.Report)
	resp.Reporter = userDto.ToUserLite(e.Reporter)
	resp.TargetAuthor = userDto.ToUserLite(e.TargetAuthor)
	return resp
}

func ToEnrichedReportResponses(list []service.EnrichedReport) []ReportResponse {
	out := make([]ReportResponse, 0, len(list))
	for i := range list {
		out = append(out, ToEnrichedReportResponse(&list[i]))
	}
	return out
}
