package request_models

// Amount nil means full refund; the field is omitted, not sent as zero.
type RefundRequest struct {
	PaymentIntentID string   `json:"payment_intent_id" binding:"required"`
	Amount          *float64 `json:"amount"`
}
