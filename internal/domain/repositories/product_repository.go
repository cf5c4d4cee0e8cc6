package repositories

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error)
	ListBySellerAndStatus(ctx context.Context, sellerID uuid.UUID, status entities.ProductStatus) ([]*entities.Product, error)
	ListByStatus(ctx context.Context, status entities.ProductStatus) ([]*entities.Product, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.Product, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error
	// MarkSellerDeleted flips the product to seller_deleted while recording
	// the status it held so restoration can put it back.
	MarkSellerDeleted(ctx context.Context, id uuid.UUID, previous entities.ProductStatus) error
	// Restore reactivates a seller_deleted product to the given status and
	// clears the recorded previous status.
	Restore(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status entities.ProductStatus) (int64, error)
}

// ArchivedProductRepository persists product snapshots from hard deletions
type ArchivedProductRepository interface {
	Create(ctx context.Context, archived *entities.ArchivedProduct) error
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.ArchivedProduct, error)
}
