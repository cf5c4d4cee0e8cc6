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

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		ID:          product.ID,
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Stock:       product.Stock,
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.PreviousStatus.Valid {
		m.PreviousStatus = &product.PreviousStatus.String
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// ListBySeller lists every product owned by a seller
func (r *ProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	var productModels []models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// ListBySellerAndStatus lists a seller's products in a given status
func (r *ProductRepository) ListBySellerAndStatus(ctx context.Context, sellerID uuid.UUID, status entities.ProductStatus) ([]*entities.Product, error) {
	var productModels []models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("seller_id = ? AND status = ?", sellerID, string(status)).
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// ListByStatus lists products in a given status, newest first
func (r *ProductRepository) ListByStatus(ctx context.Context, status entities.ProductStatus) ([]*entities.Product, error) {
	var productModels []models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// ListRecent returns the newest listings
func (r *ProductRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Product, error) {
	var productModels []models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// UpdateStatus flips only the status field
func (r *ProductRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
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

// MarkSellerDeleted deactivates a product because its seller was deleted,
// recording the status it held for later restoration
func (r *ProductRepository) MarkSellerDeleted(ctx context.Context, id uuid.UUID, previous entities.ProductStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          string(entities.ProductStatusSellerDeleted),
			"previous_status": string(previous),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Restore reactivates a seller_deleted product
func (r *ProductRepository) Restore(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          string(status),
			"previous_status": nil,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the product row entirely
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus counts products in a given status
func (r *ProductRepository) CountByStatus(ctx context.Context, status entities.ProductStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:             m.ID,
		SellerID:       m.SellerID,
		Name:           m.Name,
		Description:    m.Description,
		Category:       m.Category,
		Price:          m.Price,
		Stock:          m.Stock,
		Status:         entities.ProductStatus(m.Status),
		PreviousStatus: null.StringFromPtr(m.PreviousStatus),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func productsToEntities(productModels []models.Product) []*entities.Product {
	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products
}

// ArchivedProductRepository persists product snapshots from hard deletions
type ArchivedProductRepository struct {
	db *gorm.DB
}

// NewArchivedProductRepository creates a new archived product repository
func NewArchivedProductRepository(db *gorm.DB) *ArchivedProductRepository {
	return &ArchivedProductRepository{db: db}
}

// Create writes an archived snapshot
func (r *ArchivedProductRepository) Create(ctx context.Context, archived *entities.ArchivedProduct) error {
	if archived.ID == uuid.Nil {
		archived.ID = uuid.New()
	}
	m := &models.ArchivedProduct{
		ID:               archived.ID,
		OriginalID:       archived.OriginalID,
		OriginalSellerID: archived.OriginalSellerID,
		Name:             archived.Name,
		Category:         archived.Category,
		Price:            archived.Price,
		Status:           string(archived.Status),
		ArchivedAt:       archived.ArchivedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListBySeller lists archived snapshots for a seller
func (r *ArchivedProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.ArchivedProduct, error) {
	var archivedModels []models.ArchivedProduct
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("original_seller_id = ?", sellerID).
		Order("archived_at DESC").
		Find(&archivedModels).Error; err != nil {
		return nil, err
	}
	archived := make([]*entities.ArchivedProduct, 0, len(archivedModels))
	for i := range archivedModels {
		m := archivedModels[i]
		archived = append(archived, &entities.ArchivedProduct{
			ID:               m.ID,
			OriginalID:       m.OriginalID,
			OriginalSellerID: m.OriginalSellerID,
			Name:             m.Name,
			Category:         m.Category,
			Price:            m.Price,
			Status:           entities.ProductStatus(m.Status),
			ArchivedAt:       m.ArchivedAt,
		})
	}
	return archived, nil
}
