// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// CreateAuditLogEntry appends an immutable audit entry.
func (repo *auditLogRepository) CreateAuditLogEntry(ctx context.Context, entry *entity.AuditLog) error {
	entryM := fromAuditLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListAuditLogEntries retrieves the most recent entries, newest first.
func (repo *auditLogRepository) ListAuditLogEntries(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	var entryModels []*model.AuditLogModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit log entries")
	}

	entries := make([]*entity.AuditLog, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditLogDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain entity.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLog {
	if data == nil {
		return nil
	}

	return &entity.AuditLog{
		ID:        data.ID,
		Action:    data.Action,
		Resource:  data.Resource,
		UserID:    data.UserID,
		IP:        data.IP,
		CreatedAt: data.CreatedAt,
	}
}

// fromAuditLogDomain converts a domain entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:        data.ID,
		Action:    data.Action,
		Resource:  data.Resource,
		UserID:    data.UserID,
		IP:        data.IP,
		CreatedAt: data.CreatedAt,
	}
}
