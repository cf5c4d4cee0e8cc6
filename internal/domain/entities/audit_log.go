package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuditAction represents the administrative action being recorded
type AuditAction string

const (
	AuditActionUserDeletion    AuditAction = "user_deletion"
	AuditActionUserRestoration AuditAction = "user_restoration"
)

// AuditLogEntry is an append-only record of an administrative action.
// Entries are created once and never mutated or deleted.
type AuditLogEntry struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	TargetUserID uuid.UUID   `json:"targetUserId"`
	// Snapshot of the target's identity at the time of the action.
	TargetName   string      `json:"targetName"`
	TargetEmail  string      `json:"targetEmail"`
	TargetRole   UserRole    `json:"targetRole"`
	TargetStatus UserStatus  `json:"targetStatus"`
	AdminID      uuid.UUID   `json:"adminId"`
	DeleteType   DeleteType  `json:"deleteType"`
	Reason       null.String `json:"reason,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}
