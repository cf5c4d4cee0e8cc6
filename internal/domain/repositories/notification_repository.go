package repositories

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)
	// ListUndispatched returns notifications the push job has not yet
	// delivered, oldest first.
	ListUndispatched(ctx context.Context, limit int) ([]*entities.Notification, error)
	MarkDispatched(ctx context.Context, id uuid.UUID) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*entities.NotificationStats, error)
}
