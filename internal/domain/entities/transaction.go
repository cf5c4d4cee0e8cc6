package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionStatus represents order status
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusShipped    TransactionStatus = "shipped"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusCancelled  TransactionStatus = "cancelled"
	TransactionStatusRefunded   TransactionStatus = "refunded"
	// TransactionStatusCancelledSellerDeleted is a terminal state recording
	// that the cancellation was caused by the seller's account deletion.
	// Transactions in this state are never re-cancelled or restored.
	TransactionStatusCancelledSellerDeleted TransactionStatus = "cancelled_seller_deleted"
)

// InFlightTransactionStatuses are the statuses the seller-deletion cascade
// cancels; anything already terminal is left untouched.
var InFlightTransactionStatuses = []TransactionStatus{
	TransactionStatusPending,
	TransactionStatusProcessing,
}

// Transaction represents an order between a buyer and a seller
type Transaction struct {
	ID                 uuid.UUID         `json:"id"`
	ProductID          uuid.UUID         `json:"productId"`
	SellerID           uuid.UUID         `json:"sellerId"`
	BuyerID            uuid.UUID         `json:"buyerId"`
	Quantity           int               `json:"quantity"`
	Amount             float64           `json:"amount"`
	Status             TransactionStatus `json:"status"`
	PaymentMethod      string            `json:"paymentMethod"`
	DeliveryMethod     string            `json:"deliveryMethod"`
	CancelledAt        null.Time         `json:"cancelledAt,omitempty"`
	CancellationReason null.String       `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}
