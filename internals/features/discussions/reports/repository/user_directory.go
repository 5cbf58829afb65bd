// file: internals/features/discussions/reports/repository/user_directory.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "studenthub_backend/internals/features/users/users/model"
)

// UserDirectory resolves display info for the moderation list in one
// batched query (reporters plus target authors).
type UserDirectory interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]userModel.UserModel, error)
}

type userDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) UserDirectory {
	return &userDirectory{db: db}
}

func (d *userDirectory) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]userModel.UserModel, error) {
	out := make(map[uuid.UUID]userModel.UserModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []userModel.UserModel
	if err := d.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].UserID] = rows[i]
	}
	return out, nil
}
