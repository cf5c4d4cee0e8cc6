package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/interfaces/http/response"
	"harvest-admin.backend/internal/usecases"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationUsecase *usecases.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// Stats returns notification delivery counters
// GET /api/v1/admin/notifications/stats
func (h *NotificationHandler) Stats(c *gin.Context) {
	stats, err := h.notificationUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Announce broadcasts a system announcement to all active users
// POST /api/v1/admin/announcements
func (h *NotificationHandler) Announce(c *gin.Context) {
	var input entities.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	sent, err := h.notificationUsecase.Announce(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Announcement queued successfully",
		"recipients": sent,
	})
}

// ListByUser returns one user's notifications
// GET /api/v1/admin/users/:id/notifications
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	notifications, err := h.notificationUsecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkRead marks a notification as read
// PUT /api/v1/admin/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid notification ID"))
		return
	}

	if err := h.notificationUsecase.MarkRead(c.Request.Context(), notificationID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}
