package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NotificationType represents notification categories
type NotificationType string

const (
	NotificationSellerApproval     NotificationType = "seller_approval"
	NotificationSellerRejection    NotificationType = "seller_rejection"
	NotificationProductApproval    NotificationType = "product_approval"
	NotificationProductRejection   NotificationType = "product_rejection"
	NotificationAccountUpdate      NotificationType = "account_update"
	NotificationSystemAnnouncement NotificationType = "system_announcement"
)

// Notification represents an in-app notification row. DispatchedAt is set
// once the push dispatch job has handed it to the sender.
type Notification struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"userId"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	Type         NotificationType `json:"type"`
	Read         bool             `json:"read"`
	Data         null.JSON        `json:"data,omitempty"`
	DispatchedAt null.Time        `json:"dispatchedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// NotificationStats summarizes the notification collection
type NotificationStats struct {
	Total  int64            `json:"totalNotifications"`
	Unread int64            `json:"unreadNotifications"`
	ByType map[string]int64 `json:"notificationsByType"`
}

// AnnouncementInput represents input for a system-wide announcement
type AnnouncementInput struct {
	Title   string `json:"title" binding:"required,min=2,max=200"`
	Message string `json:"message" binding:"required,min=2"`
}
