// file: internals/features/discussions/reports/repository/report_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studenthub_backend/internals/features/discussions/reports/model"
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository interface {
	Create(ctx context.Context, m *model.ReportModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ReportModel, error)
	ListByStatuses(ctx context.Context, statuses []model.ReportStatus) ([]model.ReportModel, error)
	// TransitionFromPending flips a pending report to the given terminal
	// status. Returns false when the row was no longer pending, so two
	// racing staff actions resolve to exactly one winner.
	TransitionFromPending(ctx context.Context, id uuid.UUID, to model.ReportStatus, processedBy uuid.UUID) (bool, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, m *model.ReportModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ReportModel, error) {
	var m model.ReportModel
	if err := r.db.WithContext(ctx).
		First(&m, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *reportRepository) ListByStatuses(ctx context.Context, statuses []model.ReportStatus) ([]model.ReportModel, error) {
	var rows []model.ReportModel
	tx := r.db.WithContext(ctx).Model(&model.ReportModel{})
	if len(statuses) > 0 {
		tx = tx.Where("report_status IN ?", statuses)
	}
	if err := tx.
		Order("report_created_at DESC, report_id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, to model.ReportStatus, processedBy uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("report_id = ? AND report_status = ?", id, model.StatusPending).
		Updates(map[string]any{
			"report_status":       to,
			"report_processed_by": processedBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
