package request_models

// Plan amounts are already minor units at this layer, per the processor's
// price API. This is the one boundary that does not convert.
type CreatePlanRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AmountMinor int64  `json:"amount_minor" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Interval    string `json:"interval" binding:"required"`
}

type CreateSubscriptionRequest struct {
	CustomerID            string   `json:"customer_id" binding:"required"`
	PriceID               string   `json:"price_id" binding:"required"`
	ConnectedAccountID    *string  `json:"connected_account_id"`
	ApplicationFeePercent *float64 `json:"application_fee_percent"`
}
