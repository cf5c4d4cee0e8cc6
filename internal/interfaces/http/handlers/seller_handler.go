package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/interfaces/http/response"
	"harvest-admin.backend/internal/usecases"
)

// SellerHandler handles seller review endpoints
type SellerHandler struct {
	approvalUsecase *usecases.ApprovalUsecase
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(approvalUsecase *usecases.ApprovalUsecase) *SellerHandler {
	return &SellerHandler{approvalUsecase: approvalUsecase}
}

// ListPending returns sellers awaiting review
// GET /api/v1/admin/sellers/pending
func (h *SellerHandler) ListPending(c *gin.Context) {
	sellers, err := h.approvalUsecase.ListPendingSellers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"sellers": sellers,
		"count":   len(sellers),
	})
}

// Approve marks a pending seller as approved
// POST /api/v1/admin/sellers/:id/approve
func (h *SellerHandler) Approve(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid seller ID"))
		return
	}

	seller, err := h.approvalUsecase.ApproveSeller(c.Request.Context(), sellerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, seller)
}

// Reject marks a pending seller as rejected
// POST /api/v1/admin/sellers/:id/reject
func (h *SellerHandler) Reject(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid seller ID"))
		return
	}

	seller, err := h.approvalUsecase.RejectSeller(c.Request.Context(), sellerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, seller)
}
