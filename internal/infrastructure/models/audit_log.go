package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog rows are append-only; nothing in the codebase updates or deletes
// them. The composite action+timestamp index backs the deletion-log query.
type AuditLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Action       string    `gorm:"type:varchar(50);not null;index:idx_audit_action_ts,priority:1"`
	TargetUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetName   string    `gorm:"type:varchar(100);not null"`
	TargetEmail  string    `gorm:"type:varchar(255);not null"`
	TargetRole   string    `gorm:"type:varchar(50);not null"`
	TargetStatus string    `gorm:"type:varchar(50);not null"`
	AdminID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DeleteType   string    `gorm:"type:varchar(10);not null"`
	Reason       *string   `gorm:"type:text"`
	Timestamp    time.Time `gorm:"not null;index:idx_audit_action_ts,priority:2"`
}

func (AuditLog) TableName() string {
	return "admin_audit_logs"
}
