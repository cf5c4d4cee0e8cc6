package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/infrastructure/models"
)

// SellerRepository implements operations on the denormalized sellers mirror
type SellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// GetByEmail gets the seller mirror row by email
func (r *SellerRepository) GetByEmail(ctx context.Context, email string) (*entities.Seller, error) {
	var m models.Seller
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Seller{
		ID:        m.ID,
		UserID:    m.UserID,
		Email:     m.Email,
		FarmName:  m.FarmName,
		Status:    entities.UserStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// UpdateStatusByEmail syncs the mirror status for the user with this email
func (r *SellerRepository) UpdateStatusByEmail(ctx context.Context, email string, status entities.UserStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Seller{}).
		Where("email = ?", email).
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

// DeletedUserArchiveRepository implements hard-delete snapshot persistence
type DeletedUserArchiveRepository struct {
	db *gorm.DB
}

// NewDeletedUserArchiveRepository creates a new archive repository
func NewDeletedUserArchiveRepository(db *gorm.DB) *DeletedUserArchiveRepository {
	return &DeletedUserArchiveRepository{db: db}
}

// Create writes a compliance snapshot
func (r *DeletedUserArchiveRepository) Create(ctx context.Context, archive *entities.DeletedUserArchive) error {
	if archive.ID == uuid.Nil {
		archive.ID = uuid.New()
	}
	m := &models.DeletedUser{
		ID:         archive.ID,
		OriginalID: archive.OriginalID,
		Name:       archive.Name,
		Email:      archive.Email,
		Role:       string(archive.Role),
		Status:     string(archive.Status),
		DeletedAt:  archive.DeletedAt,
		DeletedBy:  archive.DeletedBy,
		Reason:     archive.Reason,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByOriginalID looks up the snapshot for a removed user
func (r *DeletedUserArchiveRepository) GetByOriginalID(ctx context.Context, originalID uuid.UUID) (*entities.DeletedUserArchive, error) {
	var m models.DeletedUser
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("original_id = ?", originalID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.DeletedUserArchive{
		ID:         m.ID,
		OriginalID: m.OriginalID,
		Name:       m.Name,
		Email:      m.Email,
		Role:       entities.UserRole(m.Role),
		Status:     entities.UserStatus(m.Status),
		DeletedAt:  m.DeletedAt,
		DeletedBy:  m.DeletedBy,
		Reason:     m.Reason,
	}, nil
}
