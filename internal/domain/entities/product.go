package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProductStatus represents product listing status
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
	// ProductStatusSellerDeleted marks a listing deactivated because its
	// owning seller was soft-deleted, as opposed to being rejected or
	// removed on its own. Restoration reactivates exactly these.
	ProductStatusSellerDeleted ProductStatus = "seller_deleted"
	ProductStatusDeleted       ProductStatus = "deleted"
)

// Product represents a product listing
type Product struct {
	ID          uuid.UUID     `json:"id"`
	SellerID    uuid.UUID     `json:"sellerId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	// PreviousStatus records the status a product held before the seller
	// cascade flipped it to seller_deleted, so restoration can put it back.
	PreviousStatus null.String `json:"previousStatus,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// ArchivedProduct is the snapshot kept when a hard seller deletion removes
// the live product row.
type ArchivedProduct struct {
	ID               uuid.UUID     `json:"id"`
	OriginalID       uuid.UUID     `json:"originalId"`
	OriginalSellerID uuid.UUID     `json:"originalSellerId"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	Price            float64       `json:"price"`
	Status           ProductStatus `json:"status"`
	ArchivedAt       time.Time     `json:"archivedAt"`
}
