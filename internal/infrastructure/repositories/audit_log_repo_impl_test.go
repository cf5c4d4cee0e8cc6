package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"harvest-admin.backend/internal/domain/entities"
)

func TestAuditLogRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createAuditLogTable(t, db)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	targetID := uuid.New()
	adminID := uuid.New()

	older := &entities.AuditLogEntry{
		Action:       entities.AuditActionUserDeletion,
		TargetUserID: targetID,
		TargetName:   "Bob Farmer",
		TargetEmail:  "bob@harvest.io",
		TargetRole:   entities.UserRoleSeller,
		TargetStatus: entities.UserStatusApproved,
		AdminID:      adminID,
		DeleteType:   entities.DeleteTypeSoft,
		Reason:       null.StringFrom("inactive for twelve months"),
		Timestamp:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NotEqual(t, uuid.Nil, older.ID)

	newer := &entities.AuditLogEntry{
		Action:       entities.AuditActionUserRestoration,
		TargetUserID: targetID,
		TargetName:   "Bob Farmer",
		TargetEmail:  "bob@harvest.io",
		TargetRole:   entities.UserRoleSeller,
		TargetStatus: entities.UserStatusDeleted,
		AdminID:      adminID,
		DeleteType:   entities.DeleteTypeSoft,
		Timestamp:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, newer))

	logs, err := repo.ListDeletionLogs(ctx, 50)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, entities.AuditActionUserRestoration, logs[0].Action)
	require.Equal(t, entities.AuditActionUserDeletion, logs[1].Action)
	require.Equal(t, "inactive for twelve months", logs[1].Reason.String)

	byTarget, err := repo.ListByTargetUser(ctx, targetID)
	require.NoError(t, err)
	require.Len(t, byTarget, 2)

	byOther, err := repo.ListByTargetUser(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, byOther)
}

func TestAuditLogRepository_LimitApplied(t *testing.T) {
	db := newTestDB(t)
	createAuditLogTable(t, db)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := &entities.AuditLogEntry{
			Action:       entities.AuditActionUserDeletion,
			TargetUserID: uuid.New(),
			AdminID:      uuid.New(),
			DeleteType:   entities.DeleteTypeHard,
			Timestamp:    time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, entry))
	}

	logs, err := repo.ListDeletionLogs(ctx, 3)
	require.NoError(t, err)
	require.Len(t, logs, 3)
}
