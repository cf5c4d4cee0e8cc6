package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
)

func seedTransaction(t *testing.T, repo *TransactionRepository, sellerID uuid.UUID, status entities.TransactionStatus) *entities.Transaction {
	t.Helper()
	now := time.Now()
	tx := &entities.Transaction{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		SellerID:       sellerID,
		BuyerID:        uuid.New(),
		Quantity:       2,
		Amount:         25.00,
		Status:         status,
		PaymentMethod:  "cod",
		DeliveryMethod: "pickup",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Create(context.Background(), tx))
	return tx
}

func TestTransactionRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	sellerID := uuid.New()
	tx := seedTransaction(t, repo, sellerID, entities.TransactionStatusPending)
	seedTransaction(t, repo, sellerID, entities.TransactionStatusCompleted)

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, tx.Amount, got.Amount)

	all, total, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, all, 2)

	pending, total, err := repo.List(ctx, entities.TransactionStatusPending, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, pending, 1)

	count, err := repo.CountByStatus(ctx, entities.TransactionStatusCompleted)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestTransactionRepository_ListInFlightBySeller(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	sellerID := uuid.New()
	seedTransaction(t, repo, sellerID, entities.TransactionStatusPending)
	seedTransaction(t, repo, sellerID, entities.TransactionStatusProcessing)
	seedTransaction(t, repo, sellerID, entities.TransactionStatusCompleted)
	seedTransaction(t, repo, sellerID, entities.TransactionStatusCancelled)
	seedTransaction(t, repo, uuid.New(), entities.TransactionStatusPending)

	inFlight, err := repo.ListInFlightBySeller(ctx, sellerID)
	require.NoError(t, err)
	require.Len(t, inFlight, 2)
	for _, tx := range inFlight {
		require.Contains(t, entities.InFlightTransactionStatuses, tx.Status)
	}
}

func TestTransactionRepository_Cancel(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	tx := seedTransaction(t, repo, uuid.New(), entities.TransactionStatusProcessing)
	require.NoError(t, repo.Cancel(ctx, tx.ID, entities.TransactionStatusCancelledSellerDeleted, "Seller account deleted"))

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, entities.TransactionStatusCancelledSellerDeleted, got.Status)
	require.True(t, got.CancelledAt.Valid)
	require.Equal(t, "Seller account deleted", got.CancellationReason.String)

	require.ErrorIs(t, repo.Cancel(ctx, uuid.New(), entities.TransactionStatusCancelled, "x"), domainerrors.ErrNotFound)
}
