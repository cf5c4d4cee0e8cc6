package usecases

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/domain/repositories"
)

const defaultProductListLimit = 100

// ProductUsecase serves the admin console's catalog views
type ProductUsecase struct {
	productRepo repositories.ProductRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// ListProducts returns products, optionally filtered by status.
func (u *ProductUsecase) ListProducts(ctx context.Context, status entities.ProductStatus) ([]*entities.Product, error) {
	if status == "" {
		return u.productRepo.ListRecent(ctx, defaultProductListLimit)
	}
	return u.productRepo.ListByStatus(ctx, status)
}

// GetProduct returns a single product by ID.
func (u *ProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// DeleteProduct soft-deletes a single listing. Unlike the seller cascade
// this is an admin acting on one product, so the status goes to deleted,
// not seller_deleted, and restoration does not pick it up.
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.Status == entities.ProductStatusDeleted {
		return domainerrors.InvalidState("product is already deleted", domainerrors.ErrInvalidStatus)
	}
	return u.productRepo.UpdateStatus(ctx, id, entities.ProductStatusDeleted)
}
