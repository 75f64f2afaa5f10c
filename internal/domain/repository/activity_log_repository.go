package repository

import (
	"context"
	"time"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrActivityLogNotFound is returned when no activity log row matches.
var ErrActivityLogNotFound = errors.New("activity log entry not found")

// ActivityLogRepository is the append-only store of user activity events.
// The log doubles as the rolling-window state of the anomaly engine, so the
// interface offers only appends and window aggregations, never updates or
// deletes.
type ActivityLogRepository interface {
	// AppendActivityLog appends an immutable activity event.
	AppendActivityLog(ctx context.Context, entry *entity.ActivityLog) error

	// CountActivityLogSince counts events for a user with the given action
	// at or after the since timestamp.
	CountActivityLogSince(ctx context.Context, userID uuid.UUID, action string, since time.Time) (int, error)

	// FindFirstActivityLogByDevice retrieves the earliest event for a
	// user+device combination, or ErrActivityLogNotFound when the device has
	// never been seen.
	FindFirstActivityLogByDevice(ctx context.Context, userID uuid.UUID, device string) (*entity.ActivityLog, error)
}

// SecurityAlertRepository persists alerts produced by the anomaly engine.
type SecurityAlertRepository interface {
	// CreateSecurityAlert persists a new alert.
	CreateSecurityAlert(ctx context.Context, alert *entity.SecurityAlert) error

	// FindSecurityAlertByID retrieves a single alert.
	FindSecurityAlertByID(ctx context.Context, id uuid.UUID) (*entity.SecurityAlert, error)

	// ListSecurityAlerts retrieves alerts, optionally only unresolved ones.
	ListSecurityAlerts(ctx context.Context, unresolvedOnly bool) ([]*entity.SecurityAlert, error)

	// ResolveSecurityAlert marks an alert as resolved. Resolution is terminal.
	ResolveSecurityAlert(ctx context.Context, id uuid.UUID) error
}

// ErrSecurityAlertNotFound is returned when a security alert is not found.
var ErrSecurityAlertNotFound = errors.New("security alert not found")

// AuditLogRepository is the append-only store of security-relevant actions.
type AuditLogRepository interface {
	// CreateAuditLogEntry appends an immutable audit entry.
	CreateAuditLogEntry(ctx context.Context, entry *entity.AuditLog) error

	// ListAuditLogEntries retrieves the most recent entries, newest first.
	ListAuditLogEntries(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
