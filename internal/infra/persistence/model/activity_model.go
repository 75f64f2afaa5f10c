package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel mirrors the 'user_activity_logs' table. Rows are never
// updated or deleted; the composite index serves the rolling-window counts.
type ActivityLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_user_action_time,priority:1;index:idx_activity_user_device,priority:1"`
	Action    string    `gorm:"type:varchar(50);not null;index:idx_activity_user_action_time,priority:2"`
	Resource  string    `gorm:"type:varchar(255)"`
	IP        string    `gorm:"type:varchar(45)"`
	Device    string    `gorm:"type:varchar(255);index:idx_activity_user_device,priority:2"`
	CreatedAt time.Time `gorm:"index:idx_activity_user_action_time,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "user_activity_logs"
}

// SecurityAlertModel mirrors the 'security_alerts' table.
type SecurityAlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RiskScore int       `gorm:"not null"`
	Reason    string    `gorm:"type:text;not null"`
	Resolved  bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SecurityAlertModel) TableName() string {
	return "security_alerts"
}

// AuditLogModel mirrors the 'audit_logs' table. UserID is nullable: nil
// marks a system-initiated action.
type AuditLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Action    string     `gorm:"type:varchar(50);not null"`
	Resource  string     `gorm:"type:varchar(255)"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	IP        string     `gorm:"type:varchar(45)"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
