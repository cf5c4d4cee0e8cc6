package models

import (
	"time"

	"github.com/google/uuid"
)

// User rows carry the soft-delete bookkeeping explicitly instead of
// gorm.DeletedAt: soft-deleted users must stay visible to the admin console
// and the restore path, so GORM's query-time exclusion would get in the way.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name           string     `gorm:"type:varchar(100);not null"`
	PasswordHash   string     `gorm:"type:varchar(255)"`
	Role           string     `gorm:"type:varchar(50);not null;default:'buyer';index"`
	Status         string     `gorm:"type:varchar(50);not null;default:'active';index"`
	DeletedAt      *time.Time `gorm:"type:timestamp"`
	DeletedBy      *string    `gorm:"type:varchar(64)"`
	DeletionReason *string    `gorm:"type:text"`
	OriginalStatus *string    `gorm:"type:varchar(50)"`
	RestoredAt     *time.Time `gorm:"type:timestamp"`
	RestoredBy     *string    `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Seller struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FarmName  string    `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeletedUser struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OriginalID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Role       string    `gorm:"type:varchar(50);not null"`
	Status     string    `gorm:"type:varchar(50);not null"`
	DeletedAt  time.Time `gorm:"not null"`
	DeletedBy  uuid.UUID `gorm:"type:uuid;not null"`
	Reason     string    `gorm:"type:text;not null"`
}

func (DeletedUser) TableName() string {
	return "deleted_users"
}
