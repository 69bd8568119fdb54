package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundflow/internal/gateway"
	"fundflow/internal/models/request_models"
	"fundflow/internal/models/response_models"
	"fundflow/internal/services"
	"fundflow/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (s *SubscriptionController) CreatePlan(c *gin.Context) {
	var request request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := s.subscriptionService.CreatePlan(c.Request.Context(), services.CreatePlanInput{
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
		AmountMinor: request.AmountMinor,
		Currency:    request.Currency,
		Interval:    request.Interval,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromPlan(*plan), "Plan created")
}

func (s *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := s.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.FromPlan(plan))
	}

	utils.RespondSuccess(c, out, "Plans")
}

// CreateSubscription godoc
// @Summary Subscribe a customer to a price, optionally splitting funds to a vendor
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Create Subscription Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (s *SubscriptionController) CreateSubscription(c *gin.Context) {
	var request request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(
		c.Request.Context(),
		request.CustomerID,
		request.PriceID,
		request.ConnectedAccountID,
		request.ApplicationFeePercent)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toSubscriptionResponse(sub), "Subscription created")
}

// Cancel cancels immediately by default; with ?at_period_end=true the
// subscription runs out the paid period first and can still be resumed.
func (s *SubscriptionController) Cancel(c *gin.Context) {
	subscriptionID := c.Param("id")
	atPeriodEnd := c.Query("at_period_end") == "true"

	sub, err := s.subscriptionService.Cancel(c.Request.Context(), subscriptionID, atPeriodEnd)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toSubscriptionResponse(sub), "Subscription canceled")
}

func (s *SubscriptionController) Resume(c *gin.Context) {
	subscriptionID := c.Param("id")

	sub, err := s.subscriptionService.Resume(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toSubscriptionResponse(sub), "Subscription resumed")
}

func (s *SubscriptionController) RefundLatestInvoice(c *gin.Context) {
	subscriptionID := c.Param("id")

	refund, err := s.subscriptionService.RefundLatestInvoice(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.RefundResponse{
		ID:              refund.ID,
		PaymentIntentID: refund.PaymentIntentID,
		AmountMinor:     refund.AmountMinor,
		Status:          refund.Status,
	}, "Latest invoice refunded")
}

func toSubscriptionResponse(sub *gateway.Subscription) response_models.SubscriptionResponse {
	return response_models.SubscriptionResponse{
		ID:                sub.ID,
		CustomerID:        sub.CustomerID,
		Status:            sub.Status,
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
}
