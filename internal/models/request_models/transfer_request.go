package request_models

type TransferRequest struct {
	VendorUserID string  `json:"vendor_user_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Currency     string  `json:"currency" binding:"required"`
}
