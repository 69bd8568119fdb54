package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundflow/internal/models/response_models"
	"fundflow/internal/services"
	"fundflow/pkg/utils"
)

type OnboardingController struct {
	onboardingService services.OnboardingServiceInterface
}

func NewOnboardingController(onboardingService services.OnboardingServiceInterface) *OnboardingController {
	return &OnboardingController{
		onboardingService: onboardingService,
	}
}

// BeginOnboarding godoc
// @Summary Start vendor onboarding and return the onboarding link
// @Tags Onboarding
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /onboarding [post]
func (o *OnboardingController) BeginOnboarding(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	url, err := o.onboardingService.BeginOnboarding(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OnboardingResponse{OnboardingURL: url}, "Onboarding link issued")
}

func (o *OnboardingController) GetStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	status, err := o.onboardingService.CheckStatus(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountStatusResponse{
		ConnectedAccountID: status.ID,
		ChargesEnabled:     status.ChargesEnabled,
		PayoutsEnabled:     status.PayoutsEnabled,
		DetailsSubmitted:   status.DetailsSubmitted,
		TransfersActive:    status.TransfersActive,
	}, "Onboarding status")
}

func (o *OnboardingController) DeleteOnboarding(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := o.onboardingService.DeleteOnboarding(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Onboarding deleted")
}
