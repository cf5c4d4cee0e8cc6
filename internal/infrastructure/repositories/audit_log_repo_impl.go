package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/infrastructure/models"
	"harvest-admin.backend/pkg/utils"
)

// AuditLogRepository implements the append-only audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *entities.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}
	m := &models.AuditLog{
		ID:           entry.ID,
		Action:       string(entry.Action),
		TargetUserID: entry.TargetUserID,
		TargetName:   entry.TargetName,
		TargetEmail:  entry.TargetEmail,
		TargetRole:   string(entry.TargetRole),
		TargetStatus: string(entry.TargetStatus),
		AdminID:      entry.AdminID,
		DeleteType:   string(entry.DeleteType),
		Timestamp:    entry.Timestamp,
	}
	if entry.Reason.Valid {
		m.Reason = &entry.Reason.String
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListDeletionLogs returns deletion/restoration entries newest first. The
// filter runs store-side against the action+timestamp index.
func (r *AuditLogRepository) ListDeletionLogs(ctx context.Context, limit int) ([]*entities.AuditLogEntry, error) {
	var logModels []models.AuditLog
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("action IN ?", []string{
			string(entities.AuditActionUserDeletion),
			string(entities.AuditActionUserRestoration),
		}).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, err
	}
	return auditLogsToEntities(logModels), nil
}

// ListByTargetUser returns every entry recorded against a user
func (r *AuditLogRepository) ListByTargetUser(ctx context.Context, targetUserID uuid.UUID) ([]*entities.AuditLogEntry, error) {
	var logModels []models.AuditLog
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("target_user_id = ?", targetUserID).
		Order("timestamp DESC").
		Find(&logModels).Error; err != nil {
		return nil, err
	}
	return auditLogsToEntities(logModels), nil
}

func auditLogsToEntities(logModels []models.AuditLog) []*entities.AuditLogEntry {
	entries := make([]*entities.AuditLogEntry, 0, len(logModels))
	for i := range logModels {
		m := logModels[i]
		entries = append(entries, &entities.AuditLogEntry{
			ID:           m.ID,
			Action:       entities.AuditAction(m.Action),
			TargetUserID: m.TargetUserID,
			TargetName:   m.TargetName,
			TargetEmail:  m.TargetEmail,
			TargetRole:   entities.UserRole(m.TargetRole),
			TargetStatus: entities.UserStatus(m.TargetStatus),
			AdminID:      m.AdminID,
			DeleteType:   entities.DeleteType(m.DeleteType),
			Reason:       null.StringFromPtr(m.Reason),
			Timestamp:    m.Timestamp,
		})
	}
	return entries
}
