package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProductID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	SellerID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	BuyerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity           int        `gorm:"not null;default:1"`
	Amount             float64    `gorm:"type:decimal(12,2);not null"`
	Status             string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	PaymentMethod      string     `gorm:"type:varchar(50)"`
	DeliveryMethod     string     `gorm:"type:varchar(50)"`
	CancelledAt        *time.Time `gorm:"type:timestamp"`
	CancellationReason *string    `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
