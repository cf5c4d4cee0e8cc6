package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"harvest-admin.backend/internal/interfaces/http/response"
	"harvest-admin.backend/internal/usecases"
)

const defaultAuditLogLimit = 50

// AuditHandler handles deletion audit trail endpoints
type AuditHandler struct {
	lifecycleUsecase *usecases.UserLifecycleUsecase
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(lifecycleUsecase *usecases.UserLifecycleUsecase) *AuditHandler {
	return &AuditHandler{lifecycleUsecase: lifecycleUsecase}
}

// List returns the most recent deletion and restoration log entries
// GET /api/v1/admin/audit-logs?limit=
func (h *AuditHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLogLimit)))
	if err != nil || limit < 1 {
		limit = defaultAuditLogLimit
	}

	entries, err := h.lifecycleUsecase.ListDeletionLogs(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
