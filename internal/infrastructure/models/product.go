package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(100)"`
	Price          float64   `gorm:"type:decimal(12,2);not null"`
	Stock          int       `gorm:"not null;default:0"`
	Status         string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	PreviousStatus *string   `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ArchivedProduct struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OriginalID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OriginalSellerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Category         string    `gorm:"type:varchar(100)"`
	Price            float64   `gorm:"type:decimal(12,2)"`
	Status           string    `gorm:"type:varchar(50);not null"`
	ArchivedAt       time.Time `gorm:"not null"`
}

func (ArchivedProduct) TableName() string {
	return "archived_products"
}
