package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/infrastructure/models"
)

func TestSellerRepository_GetAndUpdateByEmail(t *testing.T) {
	db := newTestDB(t)
	createSellerTable(t, db)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	m := &models.Seller{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Email:     "farm@harvest.io",
		FarmName:  "Green Valley",
		Status:    string(entities.UserStatusPending),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(m).Error)

	seller, err := repo.GetByEmail(ctx, "farm@harvest.io")
	require.NoError(t, err)
	require.Equal(t, "Green Valley", seller.FarmName)
	require.Equal(t, entities.UserStatusPending, seller.Status)

	require.NoError(t, repo.UpdateStatusByEmail(ctx, "farm@harvest.io", entities.UserStatusApproved))
	seller, err = repo.GetByEmail(ctx, "farm@harvest.io")
	require.NoError(t, err)
	require.Equal(t, entities.UserStatusApproved, seller.Status)

	_, err = repo.GetByEmail(ctx, "missing@harvest.io")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateStatusByEmail(ctx, "missing@harvest.io", entities.UserStatusApproved), domainerrors.ErrNotFound)
}

func TestDeletedUserArchiveRepository(t *testing.T) {
	db := newTestDB(t)
	createDeletedUserTable(t, db)
	repo := NewDeletedUserArchiveRepository(db)
	ctx := context.Background()

	originalID := uuid.New()
	archive := &entities.DeletedUserArchive{
		OriginalID: originalID,
		Name:       "Carol Buyer",
		Email:      "carol@harvest.io",
		Role:       entities.UserRoleBuyer,
		Status:     entities.UserStatusActive,
		DeletedAt:  time.Now(),
		DeletedBy:  uuid.New(),
		Reason:     "fraudulent chargebacks",
	}
	require.NoError(t, repo.Create(ctx, archive))
	require.NotEqual(t, uuid.Nil, archive.ID)

	got, err := repo.GetByOriginalID(ctx, originalID)
	require.NoError(t, err)
	require.Equal(t, "carol@harvest.io", got.Email)
	require.Equal(t, entities.UserStatusActive, got.Status)

	_, err = repo.GetByOriginalID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
