package db_models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusSucceeded TransactionStatus = "succeeded"
	TxnStatusFailed    TransactionStatus = "failed"
	TxnStatusRefunded  TransactionStatus = "refunded"
	TxnStatusDisputed  TransactionStatus = "disputed"
)

type TransactionType string

const (
	TxnTypeDeposit  TransactionType = "deposit"
	TxnTypePurchase TransactionType = "purchase"
	TxnTypeRefund   TransactionType = "refund"
	TxnTypePayout   TransactionType = "payout"
)

// Transaction is one row of the local ledger: a single monetary event the
// platform believes happened, reconciled against the processor's view.
// Status is owned exclusively by the repository layer.
type Transaction struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"` // payer

	// Vendor user id captured at transfer time for payout rows. The payee's
	// connected-account id goes into Metadata, since the vendor identity at
	// transfer time is not a foreign key onto the payer.
	Vendor string `gorm:"index"`

	// Idempotency key against the processor. Nullable so payout rows (which
	// have no intent) do not collide on the unique index.
	PaymentIntentID *string `gorm:"uniqueIndex"`
	TransferID      *string `gorm:"index"`
	RefundID        *string

	AmountMinor int64             // always minor units, e.g. 1999 = $19.99
	Currency    string            `gorm:"size:3"` // ISO 4217
	Status      TransactionStatus `gorm:"index"`
	Type        TransactionType   `gorm:"column:transaction_type;index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

// NewMetadata builds the JSONB payload for a ledger row, rejecting anything
// outside the closed scalar set so the ledger schema stays checkable.
func NewMetadata(values map[string]any) (datatypes.JSON, error) {
	for k, v := range values {
		switch v.(type) {
		case string, bool,
			int, int32, int64, float32, float64:
		default:
			return nil, fmt.Errorf("metadata key %q: unsupported value type %T", k, v)
		}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
