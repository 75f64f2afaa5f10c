// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// securityAlertRepository implements the repository.SecurityAlertRepository interface.
type securityAlertRepository struct {
	db *gorm.DB
}

// NewSecurityAlertRepository is the constructor for securityAlertRepository.
func NewSecurityAlertRepository(db *gorm.DB) repository.SecurityAlertRepository {
	return &securityAlertRepository{
		db: db,
	}
}

// CreateSecurityAlert persists a new alert.
func (repo *securityAlertRepository) CreateSecurityAlert(ctx context.Context, alert *entity.SecurityAlert) error {
	alertM := fromSecurityAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create security alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindSecurityAlertByID retrieves a single alert.
func (repo *securityAlertRepository) FindSecurityAlertByID(ctx context.Context, id uuid.UUID) (*entity.SecurityAlert, error) {
	var alertM model.SecurityAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSecurityAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find security alert by ID")
	}

	return toSecurityAlertDomain(&alertM), nil
}

// ListSecurityAlerts retrieves alerts, optionally only unresolved ones.
func (repo *securityAlertRepository) ListSecurityAlerts(ctx context.Context, unresolvedOnly bool) ([]*entity.SecurityAlert, error) {
	var alertModels []*model.SecurityAlertModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if unresolvedOnly {
		query = query.Where("resolved = ?", false)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list security alerts")
	}

	alerts := make([]*entity.SecurityAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toSecurityAlertDomain(alertM))
	}

	return alerts, nil
}

// ResolveSecurityAlert marks an alert as resolved. The WHERE clause guards
// against double resolution: a second call finds no unresolved row.
func (repo *securityAlertRepository) ResolveSecurityAlert(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SecurityAlertModel{}).
		Where("id = ? AND resolved = ?", id, false).
		Update("resolved", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve security alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSecurityAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSecurityAlertDomain converts a GORM SecurityAlertModel to a domain entity.
func toSecurityAlertDomain(data *model.SecurityAlertModel) *entity.SecurityAlert {
	if data == nil {
		return nil
	}

	return &entity.SecurityAlert{
		ID:        data.ID,
		UserID:    data.UserID,
		RiskScore: data.RiskScore,
		Reason:    data.Reason,
		Resolved:  data.Resolved,
		CreatedAt: data.CreatedAt,
	}
}

// fromSecurityAlertDomain converts a domain entity to a GORM SecurityAlertModel.
func fromSecurityAlertDomain(data *entity.SecurityAlert) *model.SecurityAlertModel {
	if data == nil {
		return nil
	}

	return &model.SecurityAlertModel{
		ID:        data.ID,
		UserID:    data.UserID,
		RiskScore: data.RiskScore,
		Reason:    data.Reason,
		Resolved:  data.Resolved,
		CreatedAt: data.CreatedAt,
	}
}
