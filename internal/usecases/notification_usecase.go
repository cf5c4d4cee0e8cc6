package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/pkg/logger"
)

// Notifier is the seam other usecases use to notify a user. Delivery is
// best-effort; implementations must not fail the caller's operation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, typ entities.NotificationType, title, message string, data map[string]interface{})
}

// NotificationUsecase handles notification business logic
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Notify stores an in-app notification for a user. Failures are logged and
// swallowed so a notification outage never breaks the triggering workflow.
func (u *NotificationUsecase) Notify(ctx context.Context, userID uuid.UUID, typ entities.NotificationType, title, message string, data map[string]interface{}) {
	n := &entities.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err == nil {
			n.Data.SetValid(raw)
		}
	}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		logger.Warn(ctx, "failed to create notification",
			zap.String("user_id", userID.String()),
			zap.String("type", string(typ)),
			zap.Error(err))
	}
}

// Announce fans a system announcement out to every non-deleted user.
func (u *NotificationUsecase) Announce(ctx context.Context, input *entities.AnnouncementInput) (int, error) {
	users, err := u.userRepo.List(ctx, repositories.UserFilter{})
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, user := range users {
		if user.IsDeleted() {
			continue
		}
		u.Notify(ctx, user.ID, entities.NotificationSystemAnnouncement, input.Title, input.Message, nil)
		sent++
	}
	return sent, nil
}

// ListByUser returns a user's notifications, newest first.
func (u *NotificationUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	return u.notificationRepo.ListByUser(ctx, userID)
}

// MarkRead marks a single notification as read.
func (u *NotificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := u.notificationRepo.MarkRead(ctx, id); err != nil {
		if err == domainerrors.ErrNotFound {
			return domainerrors.NotFound("notification not found")
		}
		return err
	}
	return nil
}

// Stats returns aggregate notification counters for the admin dashboard.
func (u *NotificationUsecase) Stats(ctx context.Context) (*entities.NotificationStats, error) {
	return u.notificationRepo.Stats(ctx)
}
