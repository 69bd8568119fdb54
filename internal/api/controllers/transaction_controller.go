package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundflow/internal/models/response_models"
	"fundflow/internal/services"
	"fundflow/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionController(transactionService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// ListTransactions godoc
// @Summary List ledger transactions for the authenticated identity
// @Description Users see rows they paid for; admins see rows where their id is the vendor
// @Tags Transactions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions [get]
func (t *TransactionController) ListTransactions(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	role := c.GetString("Role")

	txns, err := t.transactionService.ListTransactions(c.Request.Context(), userID, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromTransactions(txns), "Transactions")
}
