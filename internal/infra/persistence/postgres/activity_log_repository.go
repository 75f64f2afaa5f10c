// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityLogRepository implements the repository.ActivityLogRepository interface.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{
		db: db,
	}
}

// AppendActivityLog appends an immutable activity event.
func (repo *activityLogRepository) AppendActivityLog(ctx context.Context, entry *entity.ActivityLog) error {
	entryM := fromActivityLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// CountActivityLogSince counts events for a user with the given action at or
// after the since timestamp. Served by the composite (user, action, time) index.
func (repo *activityLogRepository) CountActivityLogSince(ctx context.Context, userID uuid.UUID, action string, since time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityLogModel{}).
		Where("user_id = ? AND action = ? AND created_at >= ?", userID, action, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count activity log entries")
	}

	return int(count), nil
}

// FindFirstActivityLogByDevice retrieves the earliest event for a user+device
// combination, or ErrActivityLogNotFound when the device has never been seen.
func (repo *activityLogRepository) FindFirstActivityLogByDevice(ctx context.Context, userID uuid.UUID, device string) (*entity.ActivityLog, error) {
	var entryM model.ActivityLogModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device = ?", userID, device).
		Order("created_at ASC").
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find first activity log entry by device")
	}

	return toActivityLogDomain(&entryM), nil
}

// --- Mapper Functions ---

// toActivityLogDomain converts a GORM ActivityLogModel to a domain entity.
func toActivityLogDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:        data.ID,
		UserID:    data.UserID,
		Action:    data.Action,
		Resource:  data.Resource,
		IP:        data.IP,
		Device:    data.Device,
		CreatedAt: data.CreatedAt,
	}
}

// fromActivityLogDomain converts a domain entity to a GORM ActivityLogModel.
func fromActivityLogDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Action:    data.Action,
		Resource:  data.Resource,
		IP:        data.IP,
		Device:    data.Device,
		CreatedAt: data.CreatedAt,
	}
}
