package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundflow/internal/models/request_models"
	"fundflow/internal/services"
	"fundflow/pkg/utils"
)

type TransferController struct {
	transferService services.TransferServiceInterface
}

func NewTransferController(transferService services.TransferServiceInterface) *TransferController {
	return &TransferController{
		transferService: transferService,
	}
}

// Transfer godoc
// @Summary Transfer captured funds to a vendor's connected account
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body request_models.TransferRequest true "Transfer Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transfers [post]
func (t *TransferController) Transfer(c *gin.Context) {
	var request request_models.TransferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	transfer, err := t.transferService.TransferToVendor(c.Request.Context(), request.VendorUserID, request.Amount, request.Currency)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"transfer_id":  transfer.ID,
		"amount_minor": transfer.AmountMinor,
		"currency":     transfer.Currency,
		"destination":  transfer.DestinationID,
	}, "Transfer completed")
}
