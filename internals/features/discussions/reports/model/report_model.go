// file: internals/features/discussions/reports/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   Enums
   ========================================================= */

type ReportTargetType string

const (
	TargetComment  ReportTargetType = "comment"
	TargetMaterial ReportTargetType = "material"
)

func (t ReportTargetType) Valid() bool {
	switch t {
	case TargetComment, TargetMaterial:
		return true
	}
	return false
}

type ReportReason string

const (
	ReasonSpam           ReportReason = "spam"
	ReasonInappropriate  ReportReason = "inappropriate"
	ReasonHarassment     ReportReason = "harassment"
	ReasonHateSpeech     ReportReason = "hate_speech"
	ReasonMisinformation ReportReason = "misinformation"
	ReasonCopyright      ReportReason = "copyright"
	ReasonOutdated       ReportReason = "outdated"
	ReasonDuplicate      ReportReason = "duplicate"
	ReasonQuality        ReportReason = "quality"
	ReasonOther          ReportReason = "other"
)

func (r ReportReason) Valid() bool {
	switch r {
	case ReasonSpam, ReasonInappropriate, ReasonHarassment, ReasonHateSpeech,
		ReasonMisinformation, ReasonCopyright, ReasonOutdated, ReasonDuplicate,
		ReasonQuality, ReasonOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	StatusPending   ReportStatus = "pending"
	StatusReviewed  ReportStatus = "reviewed"
	StatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusDismissed:
		return true
	}
	return false
}

// IsTerminal: reviewed and dismissed never transition again.
func (s ReportStatus) IsTerminal() bool {
	return s == StatusReviewed || s == StatusDismissed
}

/* =========================================================
   MODEL: reports
   ========================================================= */

// Report rows are never deleted. They stay behind as the audit trail even
// after the reported content itself is gone, which is why the target info
// is snapshotted at filing time instead of joined live.
type ReportModel struct {
	ReportID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_id" json:"report_id"`

	ReportTargetType ReportTargetType `gorm:"type:varchar(20);not null;column:report_target_type" json:"report_target_type"`
	ReportTargetID   uuid.UUID        `gorm:"type:uuid;not null;index;column:report_target_id" json:"report_target_id"`

	ReportReporterID uuid.UUID    `gorm:"type:uuid;not null;column:report_reporter_id" json:"report_reporter_id"`
	ReportReason     ReportReason `gorm:"type:varchar(30);not null;column:report_reason" json:"report_reason"`
	ReportDetails    *string      `gorm:"type:text;column:report_details" json:"report_details,omitempty"`

	ReportStatus ReportStatus `gorm:"type:varchar(20);not null;default:'pending';index;column:report_status" json:"report_status"`

	// Target author/content extract captured when the report is filed.
	ReportTargetSnapshot datatypes.JSON `gorm:"type:jsonb;column:report_target_snapshot" json:"report_target_snapshot,omitempty"`

	// Which staff account settled the report (nil while pending).
	ReportProcessedBy *uuid.UUID `gorm:"type:uuid;column:report_processed_by" json:"report_processed_by,omitempty"`

	ReportCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:report_created_at" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:report_updated_at" json:"report_updated_at"`
}

func (ReportModel) TableName() string { return "reports" }
