package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuditUsecase is the best-effort audit sink. Recording never returns an
// error: a failed write is logged and swallowed so that the business
// operation it documents is never rolled back or failed by telemetry.
type AuditUsecase interface {
	// Log appends an audit entry. userID is nil for system-initiated
	// actions; ip is empty when no client is involved.
	Log(ctx context.Context, action, resource string, userID *uuid.UUID, ip string)
}
