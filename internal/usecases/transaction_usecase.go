package usecases

import (
	"context"

	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/domain/repositories"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

// TransactionListResult is a page of transactions plus the total count.
type TransactionListResult struct {
	Transactions []*entities.Transaction `json:"transactions"`
	Total        int64                   `json:"total"`
	Limit        int                     `json:"limit"`
	Offset       int                     `json:"offset"`
}

// TransactionUsecase serves the admin console's order views
type TransactionUsecase struct {
	transactionRepo repositories.TransactionRepository
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(transactionRepo repositories.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{transactionRepo: transactionRepo}
}

// ListTransactions returns a page of transactions, optionally filtered by
// status, newest first.
func (u *TransactionUsecase) ListTransactions(ctx context.Context, status entities.TransactionStatus, limit, offset int) (*TransactionListResult, error) {
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}
	if offset < 0 {
		offset = 0
	}

	transactions, total, err := u.transactionRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return &TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}
