package response_models

import (
	"fundflow/internal/models/db_models"
)

// TransactionResponse renders a ledger row. Amount is converted to major
// units for display only; AmountMinor is the stored value.
type TransactionResponse struct {
	ID              string  `json:"id"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	TransferID      *string `json:"transfer_id,omitempty"`
	RefundID        *string `json:"refund_id,omitempty"`
	Amount          float64 `json:"amount"`
	AmountMinor     int64   `json:"amount_minor"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	Type            string  `json:"type"`
	CreatedAt       int64   `json:"created_at"`
}

func FromTransaction(txn db_models.Transaction) TransactionResponse {
	money := db_models.Money{AmountMinor: txn.AmountMinor, Currency: txn.Currency}
	return TransactionResponse{
		ID:              txn.ID.String(),
		PaymentIntentID: txn.PaymentIntentID,
		TransferID:      txn.TransferID,
		RefundID:        txn.RefundID,
		Amount:          money.Major(),
		AmountMinor:     txn.AmountMinor,
		Currency:        txn.Currency,
		Status:          string(txn.Status),
		Type:            string(txn.Type),
		CreatedAt:       txn.CreatedAt,
	}
}

func FromTransactions(txns []db_models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, FromTransaction(txn))
	}
	return out
}
