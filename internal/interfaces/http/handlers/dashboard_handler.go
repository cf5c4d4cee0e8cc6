package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"harvest-admin.backend/internal/interfaces/http/response"
	"harvest-admin.backend/internal/usecases"
)

// DashboardHandler handles admin dashboard endpoints
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetStats returns aggregate marketplace counters
// GET /api/v1/admin/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// GetActivity returns the most recent marketplace events
// GET /api/v1/admin/activity
func (h *DashboardHandler) GetActivity(c *gin.Context) {
	activity, err := h.dashboardUsecase.GetRecentActivity(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"activity": activity,
		"count":    len(activity),
	})
}
