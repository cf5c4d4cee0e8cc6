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
	domainRepos "harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// List lists users with optional role/status/search filters
func (r *UserRepository) List(ctx context.Context, filter domainRepos.UserFilter) ([]*entities.User, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Order("created_at DESC")
	query = applyUserFilter(query, filter)

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// ListByIDs gets users for a set of IDs
func (r *UserRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var userModels []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// ListRecent returns the newest registrations
func (r *UserRepository) ListRecent(ctx context.Context, limit int) ([]*entities.User, error) {
	var userModels []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// UpdateStatus flips only the status field
func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
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

// MarkDeleted applies the soft-delete field set in one partial update
func (r *UserRepository) MarkDeleted(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"status":          string(entities.UserStatusDeleted),
		"deleted_at":      user.DeletedAt.Time,
		"deleted_by":      user.DeletedBy.String,
		"deletion_reason": user.DeletionReason.String,
		"original_status": user.OriginalStatus.String,
		"updated_at":      time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkRestored clears the soft-delete field set and stamps the restoration
func (r *UserRepository) MarkRestored(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"status":          string(user.Status),
		"restored_at":     user.RestoredAt.Time,
		"restored_by":     user.RestoredBy.String,
		"deleted_at":      nil,
		"deleted_by":      nil,
		"deletion_reason": nil,
		"original_status": nil,
		"updated_at":      time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the user row entirely (hard delete)
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Unscoped().Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count counts users matching the filter
func (r *UserRepository) Count(ctx context.Context, filter domainRepos.UserFilter) (int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{})
	query = applyUserFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func applyUserFilter(query *gorm.DB, filter domainRepos.UserFilter) *gorm.DB {
	if filter.Role != "" {
		query = query.Where("role = ?", string(filter.Role))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", searchTerm, searchTerm)
	}
	return query
}

func userToModel(u *entities.User) *models.User {
	m := &models.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.DeletedAt.Valid {
		m.DeletedAt = &u.DeletedAt.Time
	}
	if u.DeletedBy.Valid {
		m.DeletedBy = &u.DeletedBy.String
	}
	if u.DeletionReason.Valid {
		m.DeletionReason = &u.DeletionReason.String
	}
	if u.OriginalStatus.Valid {
		m.OriginalStatus = &u.OriginalStatus.String
	}
	return m
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		PasswordHash:   m.PasswordHash,
		Role:           entities.UserRole(m.Role),
		Status:         entities.UserStatus(m.Status),
		DeletedAt:      null.TimeFromPtr(m.DeletedAt),
		DeletedBy:      null.StringFromPtr(m.DeletedBy),
		DeletionReason: null.StringFromPtr(m.DeletionReason),
		OriginalStatus: null.StringFromPtr(m.OriginalStatus),
		RestoredAt:     null.TimeFromPtr(m.RestoredAt),
		RestoredBy:     null.StringFromPtr(m.RestoredBy),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
