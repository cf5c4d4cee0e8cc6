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

// ProductHandler handles product moderation endpoints
type ProductHandler struct {
	productUsecase  *usecases.ProductUsecase
	approvalUsecase *usecases.ApprovalUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase, approvalUsecase *usecases.ApprovalUsecase) *ProductHandler {
	return &ProductHandler{
		productUsecase:  productUsecase,
		approvalUsecase: approvalUsecase,
	}
}

// List returns products, optionally filtered by status
// GET /api/v1/admin/products?status=
func (h *ProductHandler) List(c *gin.Context) {
	status := entities.ProductStatus(c.Query("status"))

	products, err := h.productUsecase.ListProducts(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Get returns a single product by ID
// GET /api/v1/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	product, err := h.productUsecase.GetProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Approve publishes a pending product listing
// POST /api/v1/admin/products/:id/approve
func (h *ProductHandler) Approve(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	product, err := h.approvalUsecase.ApproveProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Reject declines a pending product listing
// POST /api/v1/admin/products/:id/reject
func (h *ProductHandler) Reject(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	product, err := h.approvalUsecase.RejectProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Delete takes a product off the marketplace
// DELETE /api/v1/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	if err := h.productUsecase.DeleteProduct(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
