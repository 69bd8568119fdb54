package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fundflow/internal/models/request_models"
	"fundflow/internal/models/response_models"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
	"fundflow/pkg/utils"
)

// RefundController orchestrates the two halves of a refund: the gateway
// execution (RefundService) and the ledger bookkeeping, kept separate so a
// ledger failure is reported as such and not as a failed refund.
type RefundController struct {
	refundService services.RefundServiceInterface
	ledger        repositories.TransactionRepository
}

func NewRefundController(refundService services.RefundServiceInterface, ledger repositories.TransactionRepository) *RefundController {
	return &RefundController{
		refundService: refundService,
		ledger:        ledger,
	}
}

// Refund godoc
// @Summary Refund a payment intent, fully or partially
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.RefundRequest true "Refund Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/refund [post]
func (r *RefundController) Refund(c *gin.Context) {
	var request request_models.RefundRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	refund, err := r.refundService.Refund(c.Request.Context(), request.PaymentIntentID, request.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := r.ledger.MarkRefunded(c.Request.Context(), request.PaymentIntentID, refund.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The processor refunded an intent the ledger never recorded;
			// replaying verification for this intent id reconciles it.
			utils.HandleServiceError(c, utils.ErrTransactionNotFound)
			return
		}
		utils.HandleServiceError(c, utils.ErrLedgerWrite)
		return
	}

	utils.RespondSuccess(c, response_models.RefundResponse{
		ID:              refund.ID,
		PaymentIntentID: refund.PaymentIntentID,
		AmountMinor:     refund.AmountMinor,
		Status:          refund.Status,
	}, "Refund completed")
}
