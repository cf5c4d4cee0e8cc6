package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/interfaces/http/response"
	"harvest-admin.backend/internal/usecases"
	"harvest-admin.backend/pkg/utils"
)

// TransactionHandler handles order monitoring endpoints
type TransactionHandler struct {
	transactionUsecase *usecases.TransactionUsecase
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUsecase *usecases.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{transactionUsecase: transactionUsecase}
}

// List returns transactions with optional status filter and pagination
// GET /api/v1/admin/transactions?status=&page=&limit=
func (h *TransactionHandler) List(c *gin.Context) {
	status := entities.TransactionStatus(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := utils.GetPaginationParams(page, limit)
	result, err := h.transactionUsecase.ListTransactions(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": result.Transactions,
		"pagination":   utils.CalculateMeta(result.Total, params.Page, result.Limit),
	})
}
