package request_models

// Amounts are major units at the API boundary; conversion to minor units
// happens once inside the services.
type CreateIntentRequest struct {
	Amount          float64 `json:"amount" binding:"required"`
	Currency        string  `json:"currency" binding:"required"`
	PaymentMethodID string  `json:"payment_method_id"`
}

type VerifyPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type AttachPaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}
