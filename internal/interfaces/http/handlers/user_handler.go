package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/internal/interfaces/http/middleware"
	"harvest-admin.backend/internal/interfaces/http/response"
	"harvest-admin.backend/internal/usecases"
	"harvest-admin.backend/pkg/metrics"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userUsecase      *usecases.UserUsecase
	lifecycleUsecase *usecases.UserLifecycleUsecase
	approvalUsecase  *usecases.ApprovalUsecase
	metrics          *metrics.Metrics
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userUsecase *usecases.UserUsecase,
	lifecycleUsecase *usecases.UserLifecycleUsecase,
	approvalUsecase *usecases.ApprovalUsecase,
	m *metrics.Metrics,
) *UserHandler {
	return &UserHandler{
		userUsecase:      userUsecase,
		lifecycleUsecase: lifecycleUsecase,
		approvalUsecase:  approvalUsecase,
		metrics:          m,
	}
}

// ListUsers returns users filtered by role, status and free-text search
// GET /api/v1/admin/users?role=&status=&search=
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := repositories.UserFilter{
		Role:   entities.UserRole(c.Query("role")),
		Status: entities.UserStatus(c.Query("status")),
		Search: c.Query("search"),
	}

	users, err := h.userUsecase.ListUsers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetUser returns a single user by ID
// GET /api/v1/admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateStatus changes a user's account status
// PUT /api/v1/admin/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	var input entities.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.approvalUsecase.UpdateUserStatus(c.Request.Context(), userID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser soft or hard deletes a user account
// POST /api/v1/admin/users/:id/delete
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing authentication"))
		return
	}

	var input entities.DeleteUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.lifecycleUsecase.DeleteUser(c.Request.Context(), userID, adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordUserDeletion(string(result.DeleteType))
	}

	response.Success(c, http.StatusOK, result)
}

// RestoreUser reactivates a soft-deleted user
// POST /api/v1/admin/users/:id/restore
func (h *UserHandler) RestoreUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing authentication"))
		return
	}

	result, err := h.lifecycleUsecase.RestoreUser(c.Request.Context(), userID, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordUserRestoration()
	}

	response.Success(c, http.StatusOK, result)
}

// ListDeleted returns all soft-deleted users
// GET /api/v1/admin/users/deleted
func (h *UserHandler) ListDeleted(c *gin.Context) {
	users, err := h.lifecycleUsecase.ListDeletedUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetDeletionHistory returns the audit trail for one user
// GET /api/v1/admin/users/:id/history
func (h *UserHandler) GetDeletionHistory(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	entries, err := h.lifecycleUsecase.GetDeletionHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
