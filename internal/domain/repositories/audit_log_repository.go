package repositories

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
)

// AuditLogRepository defines the append-only audit trail operations.
// There is deliberately no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entities.AuditLogEntry) error
	// ListDeletionLogs returns deletion/restoration entries newest first,
	// filtered store-side rather than scanned client-side.
	ListDeletionLogs(ctx context.Context, limit int) ([]*entities.AuditLogEntry, error)
	ListByTargetUser(ctx context.Context, targetUserID uuid.UUID) ([]*entities.AuditLogEntry, error)
}
