package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions recorded in the user activity log. The activity log is
// the rolling-window store for the anomaly engine, so the action names are
// part of the scoring contract.
const (
	ActionLogin           = "LOGIN"
	ActionViewRecord      = "VIEW_RECORD"
	ActionForbiddenAccess = "FORBIDDEN_ACCESS"
	ActionTokenRefresh    = "TOKEN_REFRESH"
)

// Audit actions written by the security subsystem.
const (
	AuditSecurityAlertGenerated = "SECURITY_ALERT_GENERATED"
	AuditAccountAutoSuspended   = "ACCOUNT_AUTO_SUSPENDED"
	AuditUserApproved           = "USER_APPROVED"
	AuditUserRejected           = "USER_REJECTED"
	AuditUserSuspended          = "USER_SUSPENDED"
	AuditUserDeleted            = "USER_DELETED"
	AuditAlertResolved          = "ALERT_RESOLVED"
	AuditAssignmentCreated      = "ASSIGNMENT_CREATED"
	AuditAssignmentDeleted      = "ASSIGNMENT_DELETED"
)

// ActivityLog is an immutable record of a user action. Entries are
// append-only; the anomaly engine only ever reads them for rolling-window
// aggregation.
type ActivityLog struct {
	ID        uuid.UUID // The unique ID of the log entry.
	UserID    uuid.UUID // The acting user.
	Action    string    // What the user did, e.g. VIEW_RECORD.
	Resource  string    // The resource acted on, e.g. "patient/<id>/labs".
	IP        string    // The client IP address.
	Device    string    // A client device identifier, "unknown" when absent.
	CreatedAt time.Time // When the action happened.
}

// SecurityAlert is created by the anomaly engine when an evaluation scores
// above zero. Alerts are resolved only by an explicit admin action; once
// resolved they are terminal.
type SecurityAlert struct {
	ID        uuid.UUID // The unique ID of the alert.
	UserID    uuid.UUID // The user whose activity triggered the alert.
	RiskScore int       // Aggregate score of the triggering evaluation, always > 0.
	Reason    string    // Joined human-readable reasons of the triggered rules.
	Resolved  bool      // Terminal once true.
	CreatedAt time.Time // When the alert was created.
}

// AuditLog is an immutable, append-only record of a security-relevant
// action. UserID is nil for system-initiated actions.
type AuditLog struct {
	ID        uuid.UUID  // The unique ID of the audit entry.
	Action    string     // What happened, e.g. ACCOUNT_AUTO_SUSPENDED.
	Resource  string     // The resource affected.
	UserID    *uuid.UUID // The affected or acting user, nil for system.
	IP        string     // The client IP, empty for system actions.
	CreatedAt time.Time  // When the entry was written.
}
