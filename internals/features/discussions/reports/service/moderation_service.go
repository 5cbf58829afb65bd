// file: internals/features/discussions/reports/service/moderation_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studenthub_backend/internals/features/discussions/reports/model"
	"studenthub_backend/internals/features/discussions/reports/repository"
	userModel "studenthub_backend/internals/features/users/users/model"
)

type FileReportInput struct {
	TargetType model.ReportTargetType
	TargetID   uuid.UUID
	ReporterID uuid.UUID
	Reason     model.ReportReason
	Details    *string
}

// EnrichedReport is a report row plus the display users the moderation
// table renders alongside it.
type EnrichedReport struct {
	Report       model.ReportModel
	Reporter     *userModel.UserModel
	TargetAuthor *userModel.UserModel
}

type ModerationService interface {
	File(ctx context.Context, in FileReportInput) (*model.ReportModel, error)
	// Process settles a pending report. Terminal reports accept a repeat of
	// the same action as a no-op success; a different action conflicts.
	Process(ctx context.Context, id uuid.UUID, action model.ReportStatus, processedBy uuid.UUID) (*model.ReportModel, error)
	List(ctx context.Context, filter string) ([]EnrichedReport, error)
}

type moderationService struct {
	reports repository.ReportRepository
	targets map[model.ReportTargetType]repository.TargetGateway
	users   repository.UserDirectory
}

func NewModerationService(
	reports repository.ReportRepository,
	targets map[model.ReportTargetType]repository.TargetGateway,
	users repository.UserDirectory,
) ModerationService {
	return &moderationService{
		reports: reports,
		targets: targets,
		users:   users,
	}
}

// ==============================
// File
// ==============================

func (s *moderationService) File(ctx context.Context, in FileReportInput) (*model.ReportModel, error) {
	if !in.TargetType.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Target type must be comment or material")
	}
	if !in.Reason.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown report reason")
	}

	gateway, ok := s.targets[in.TargetType]
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Target type must be comment or material")
	}

	snap, err := gateway.Snapshot(ctx, in.TargetID)
	if err != nil {
		if errors.Is(err, repository.ErrTargetNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Reported content not found")
		}
		return nil, err
	}
	snapJSON, err := snap.ToJSON()
	if err != nil {
		return nil, err
	}

	m := &model.ReportModel{
		ReportTargetType:     in.TargetType,
		ReportTargetID:       in.TargetID,
		ReportReporterID:     in.ReporterID,
		ReportReason:         in.Reason,
		ReportDetails:        trimPtr(in.Details),
		ReportStatus:         model.StatusPending,
		ReportTargetSnapshot: snapJSON,
	}
	if err := retryOnce(func() error { return s.reports.Create(ctx, m) }); err != nil {
		return nil, err
	}
	return m, nil
}

// ==============================
// Process
// ==============================

func (s *moderationService) Process(ctx context.Context, id uuid.UUID, action model.ReportStatus, processedBy uuid.UUID) (*model.ReportModel, error) {
	if action != model.StatusReviewed && action != model.StatusDismissed {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Action must be reviewed or dismissed")
	}

	r, err := s.findReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.ReportStatus.IsTerminal() {
		return s.settleTerminal(ctx, r, action)
	}

	won, err := s.transition(ctx, id, action, processedBy)
	if err != nil {
		return nil, err
	}
	if !won {
		// another staff member settled it between our read and our update
		r, err := s.findReport(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.settleTerminal(ctx, r, action)
	}

	if action == model.StatusReviewed {
		if err := s.cascade(ctx, r); err != nil {
			return nil, err
		}
	}
	return s.findReport(ctx, id)
}

func (s *moderationService) findReport(ctx context.Context, id uuid.UUID) (*model.ReportModel, error) {
	r, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Report not found")
		}
		return nil, err
	}
	return r, nil
}

func (s *moderationService) transition(ctx context.Context, id uuid.UUID, action model.ReportStatus, processedBy uuid.UUID) (bool, error) {
	var won bool
	err := retryOnce(func() error {
		var err error
		won, err = s.reports.TransitionFromPending(ctx, id, action, processedBy)
		return err
	})
	return won, err
}

// settleTerminal handles process() hitting an already-settled report: a
// repeat of the recorded action is success, anything else is a conflict.
// Repeated `reviewed` re-issues the cascade, so a retry after a crash
// between status flip and delete still converges.
func (s *moderationService) settleTerminal(ctx context.Context, r *model.ReportModel, action model.ReportStatus) (*model.ReportModel, error) {
	if r.ReportStatus != action {
		return nil, fiber.NewError(fiber.StatusConflict, "Report already has a disposition")
	}
	if action == model.StatusReviewed {
		if err := s.cascade(ctx, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (s *moderationService) cascade(ctx context.Context, r *model.ReportModel) error {
	gateway, ok := s.targets[r.ReportTargetType]
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "No remover for target type "+string(r.ReportTargetType))
	}

	var removed bool
	err := retryOnce(func() error {
		var err error
		removed, err = gateway.Remove(ctx, r.ReportTargetID)
		return err
	})
	if err != nil {
		return err
	}
	if !removed {
		// already deleted through another path; the review stands
		log.Printf("[INFO] report %s: %s %s already removed, cascade satisfied",
			r.ReportID, r.ReportTargetType, r.ReportTargetID)
	}
	return nil
}

// ==============================
// List
// ==============================

func (s *moderationService) List(ctx context.Context, filter string) ([]EnrichedReport, error) {
	statuses, err := statusesForFilter(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, err
	}

	idSet := make(map[uuid.UUID]struct{}, len(rows)*2)
	for i := range rows {
		idSet[rows[i].ReportReporterID] = struct{}{}
		if snap, ok := repository.ParseSnapshot(rows[i].ReportTargetSnapshot); ok {
			idSet[snap.TargetAuthorID] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedReport, 0, len(rows))
	for i := range rows {
		e := EnrichedReport{Report: rows[i]}
		if u, ok := users[rows[i].ReportReporterID]; ok {
			uc := u
			e.Reporter = &uc
		}
		if snap, ok := repository.ParseSnapshot(rows[i].ReportTargetSnapshot); ok {
			if u, ok := users[snap.TargetAuthorID]; ok {
				uc := u
				e.TargetAuthor = &uc
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func statusesForFilter(filter string) ([]model.ReportStatus, error) {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", "all":
		return nil, nil
	case "pending":
		return []model.ReportStatus{model.StatusPending}, nil
	case "processed":
		return []model.ReportStatus{model.StatusReviewed, model.StatusDismissed}, nil
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status filter must be pending, processed or all")
	}
}

/* ==============================
   Small utils
   ============================== */

const storeRetryBackoff = 150 * time.Millisecond

// retryOnce gives transient store failures a single second chance before
// surfacing a generic try-again error.
func retryOnce(op func() error) error {
	first := op()
	if first == nil {
		return nil
	}
	time.Sleep(storeRetryBackoff)
	if second := op(); second != nil {
		log.Printf("[ERROR] store operation failed twice: %v (first: %v)", second, first)
		return fiber.NewError(fiber.StatusServiceUnavailable, "Storage is busy. Please try again.")
	}
	return nil
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
