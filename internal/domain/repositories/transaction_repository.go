package repositories

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
)

// TransactionRepository defines order data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	List(ctx context.Context, status entities.TransactionStatus, limit, offset int) ([]*entities.Transaction, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.Transaction, error)
	// ListInFlightBySeller returns the seller's transactions still in
	// pending or processing, the only ones the deletion cascade touches.
	ListInFlightBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error
	// Cancel moves a transaction to the given terminal status with a
	// cancellation timestamp and reason.
	Cancel(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, reason string) error
	CountByStatus(ctx context.Context, status entities.TransactionStatus) (int64, error)
}
