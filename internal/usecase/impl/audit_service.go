package impl

import (
	"context"
	"log/slog"

	deliverycontext "caregate/internal/delivery/context"
	"caregate/internal/domain/entity"
	"caregate/internal/domain/repository"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface. The sink is strictly
// best-effort: a failed write is logged at Error level and swallowed, so the
// business action being documented always completes.
type auditService struct {
	auditRepo repository.AuditLogRepository
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo repository.AuditLogRepository
	Logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Log appends an audit entry, swallowing any persistence failure.
func (srv *auditService) Log(ctx context.Context, action, resource string, userID *uuid.UUID, ip string) {
	entry := &entity.AuditLog{
		Action:   action,
		Resource: resource,
		UserID:   userID,
		IP:       ip,
	}

	if err := srv.auditRepo.CreateAuditLogEntry(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to write audit log entry",
			slog.String("action", action),
			slog.String("resource", resource),
			slog.Any("error", err),
		)
	}
}
