package usecase

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminLoginInput defines the data required for an administrator to log in.
type AdminLoginInput struct {
	Email    string
	Password string
}

// AdminLoginOutput returns the generated admin-audience tokens.
type AdminLoginOutput struct {
	AccessToken  string
	RefreshToken string
	Admin        *entity.Admin
}

// AdminUsecase defines the interface for administrator operations. Every
// mutation writes an audit entry attributing the action.
type AdminUsecase interface {
	Login(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)

	ListUsers(ctx context.Context, status *entity.ApprovalStatus) ([]*entity.User, error)
	ApproveUser(ctx context.Context, userID uuid.UUID) error
	RejectUser(ctx context.Context, userID uuid.UUID) error
	SuspendUser(ctx context.Context, userID uuid.UUID) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	AssignDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error
	UnassignDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error

	ListAlerts(ctx context.Context, unresolvedOnly bool) ([]*entity.SecurityAlert, error)
	ResolveAlert(ctx context.Context, alertID uuid.UUID) error

	ListAuditLog(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
