package response_models

import (
	"fundflow/internal/models/db_models"
)

type PlanResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	PriceMinor  int64   `json:"price_minor"`
	Currency    string  `json:"currency"`
	Interval    string  `json:"interval"`
	ProductID   string  `json:"product_id"`
	PriceID     string  `json:"price_id"`
	Description *string `json:"description,omitempty"`
}

func FromPlan(plan db_models.Plan) PlanResponse {
	return PlanResponse{
		Code:        plan.Code,
		Name:        plan.Name,
		PriceMinor:  plan.PriceMinor,
		Currency:    plan.Currency,
		Interval:    string(plan.Period),
		ProductID:   plan.ProviderProductID,
		PriceID:     plan.ProviderPriceID,
		Description: plan.Description,
	}
}

type SubscriptionResponse struct {
	ID                string `json:"id"`
	CustomerID        string `json:"customer_id"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
}

type RefundResponse struct {
	ID              string `json:"id"`
	PaymentIntentID string `json:"payment_intent_id"`
	AmountMinor     int64  `json:"amount_minor"`
	Status          string `json:"status"`
}
