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
	"harvest-admin.backend/pkg/utils"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = utils.GenerateUUIDv7()
	}
	m := &models.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		Data:      "{}",
		CreatedAt: n.CreatedAt,
	}
	if n.Data.Valid {
		m.Data = string(n.Data.JSON)
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	var m models.Notification
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return notificationToEntity(&m), nil
}

// ListByUser lists a user's notifications newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	var notifModels []models.Notification
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifModels).Error; err != nil {
		return nil, err
	}
	return notificationsToEntities(notifModels), nil
}

// ListUndispatched returns notifications the push job has not delivered yet
func (r *NotificationRepository) ListUndispatched(ctx context.Context, limit int) ([]*entities.Notification, error) {
	var notifModels []models.Notification
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("dispatched_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&notifModels).Error; err != nil {
		return nil, err
	}
	return notificationsToEntities(notifModels), nil
}

// MarkDispatched stamps a notification as handed to the push sender
func (r *NotificationRepository) MarkDispatched(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("dispatched_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkRead flags a notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Stats summarizes the notification collection with store-side aggregation
func (r *NotificationRepository) Stats(ctx context.Context) (*entities.NotificationStats, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	stats := &entities.NotificationStats{ByType: map[string]int64{}}
	if err := db.Model(&models.Notification{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Notification{}).Where("read = ?", false).Count(&stats.Unread).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Type  string
		Count int64
	}
	if err := db.Model(&models.Notification{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByType[row.Type] = row.Count
	}
	return stats, nil
}

func notificationToEntity(m *models.Notification) *entities.Notification {
	n := &entities.Notification{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Message:      m.Message,
		Type:         entities.NotificationType(m.Type),
		Read:         m.Read,
		DispatchedAt: null.TimeFromPtr(m.DispatchedAt),
		CreatedAt:    m.CreatedAt,
	}
	if m.Data != "" && m.Data != "{}" {
		n.Data = null.JSONFrom([]byte(m.Data))
	}
	return n
}

func notificationsToEntities(notifModels []models.Notification) []*entities.Notification {
	notifications := make([]*entities.Notification, 0, len(notifModels))
	for i := range notifModels {
		notifications = append(notifications, notificationToEntity(&notifModels[i]))
	}
	return notifications
}
