package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/infrastructure/models"
)

// TransactionRepository implements order data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:             tx.ID,
		ProductID:      tx.ProductID,
		SellerID:       tx.SellerID,
		BuyerID:        tx.BuyerID,
		Quantity:       tx.Quantity,
		Amount:         tx.Amount,
		Status:         string(tx.Status),
		PaymentMethod:  tx.PaymentMethod,
		DeliveryMethod: tx.DeliveryMethod,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return transactionToEntity(&m), nil
}

// List lists transactions with optional status filter and pagination
func (r *TransactionRepository) List(ctx context.Context, status entities.TransactionStatus, limit, offset int) ([]*entities.Transaction, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txModels []models.Transaction
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txModels).Error; err != nil {
		return nil, 0, err
	}
	return transactionsToEntities(txModels), total, nil
}

// ListRecent returns the newest transactions
func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	var txModels []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	return transactionsToEntities(txModels), nil
}

// ListInFlightBySeller returns the seller's pending/processing transactions
func (r *TransactionRepository) ListInFlightBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Transaction, error) {
	statuses := make([]string, 0, len(entities.InFlightTransactionStatuses))
	for _, s := range entities.InFlightTransactionStatuses {
		statuses = append(statuses, string(s))
	}

	var txModels []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("seller_id = ? AND status IN ?", sellerID, statuses).
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	return transactionsToEntities(txModels), nil
}

// UpdateStatus flips only the status field
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Cancel moves a transaction to a terminal cancelled status with a reason
func (r *TransactionRepository) Cancel(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, reason string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              string(status),
			"cancelled_at":        time.Now(),
			"cancellation_reason": reason,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus counts transactions in a given status
func (r *TransactionRepository) CountByStatus(ctx context.Context, status entities.TransactionStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func transactionToEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:                 m.ID,
		ProductID:          m.ProductID,
		SellerID:           m.SellerID,
		BuyerID:            m.BuyerID,
		Quantity:           m.Quantity,
		Amount:             m.Amount,
		Status:             entities.TransactionStatus(m.Status),
		PaymentMethod:      m.PaymentMethod,
		DeliveryMethod:     m.DeliveryMethod,
		CancelledAt:        null.TimeFromPtr(m.CancelledAt),
		CancellationReason: null.StringFromPtr(m.CancellationReason),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func transactionsToEntities(txModels []models.Transaction) []*entities.Transaction {
	txs := make([]*entities.Transaction, 0, len(txModels))
	for i := range txModels {
		txs = append(txs, transactionToEntity(&txModels[i]))
	}
	return txs
}
