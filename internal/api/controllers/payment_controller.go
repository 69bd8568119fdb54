package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundflow/internal/models/request_models"
	"fundflow/internal/models/response_models"
	"fundflow/internal/services"
	"fundflow/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateIntent godoc
// @Summary Create a payment intent for the authenticated user
// @Description Creates a processor-side payment intent; confirms it server-side only when a payment method id is supplied
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateIntentRequest true "Create Intent Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/intent [post]
func (p *PaymentController) CreateIntent(c *gin.Context) {
	var request request_models.CreateIntentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	clientSecret, err := p.paymentService.CreateIntent(c.Request.Context(), userID, request.Amount, request.Currency, request.PaymentMethodID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreateIntentResponse{ClientSecret: clientSecret}, "Payment intent created")
}

// VerifyPayment godoc
// @Summary Verify a payment intent and record it in the ledger
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	txn, err := p.paymentService.VerifyIntent(c.Request.Context(), userID, request.PaymentIntentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromTransaction(*txn), "Payment verified")
}

func (p *PaymentController) AttachPaymentMethod(c *gin.Context) {
	var request request_models.AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	method, err := p.paymentService.AttachPaymentMethod(c.Request.Context(), userID, request.PaymentMethodID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PaymentMethodResponse{
		ID:    method.ID,
		Type:  method.Type,
		Last4: method.Last4,
	}, "Payment method attached")
}
