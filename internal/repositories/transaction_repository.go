package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fundflow/internal/models/db_models"
)

// TransactionRepository is the ledger. It exclusively owns transaction
// status; nothing else mutates a row except through these operations.
type TransactionRepository interface {
	// UpsertByPaymentIntent converges concurrent duplicate writes for the
	// same intent onto one row. The unique index on payment_intent_id is the
	// enforcement mechanism, not application-level locking. Rows in a
	// terminal status (refunded, disputed) are never overwritten: the
	// processor keeps reporting a refunded intent as succeeded, and a
	// re-verification must not regress the row.
	UpsertByPaymentIntent(ctx context.Context, txn *db_models.Transaction) error

	Append(ctx context.Context, txn *db_models.Transaction) error

	FindByPaymentIntent(ctx context.Context, paymentIntentID string) (*db_models.Transaction, error)
	MarkRefunded(ctx context.Context, paymentIntentID, refundID string) error

	ListByUser(ctx context.Context, userID string) ([]db_models.Transaction, error)
	ListByVendor(ctx context.Context, vendor string) ([]db_models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (t *transactionRepository) UpsertByPaymentIntent(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "payment_intent_id"}},
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Not(clause.IN{
					Column: clause.Column{Table: "transactions", Name: "status"},
					Values: []interface{}{db_models.TxnStatusRefunded, db_models.TxnStatusDisputed},
				}),
			}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "amount_minor", "currency", "updated_at",
			}),
		}).
		Create(txn).Error
}

func (t *transactionRepository) Append(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) FindByPaymentIntent(ctx context.Context, paymentIntentID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).
		First(&txn, "payment_intent_id = ?", paymentIntentID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (t *transactionRepository) MarkRefunded(ctx context.Context, paymentIntentID, refundID string) error {
	res := t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("payment_intent_id = ?", paymentIntentID).
		Updates(map[string]interface{}{
			"status":    db_models.TxnStatusRefunded,
			"refund_id": refundID,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *transactionRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error

	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (t *transactionRepository) ListByVendor(ctx context.Context, vendor string) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := t.db.WithContext(ctx).
		Where("vendor = ?", vendor).
		Order("created_at DESC").
		Find(&txns).Error

	if err != nil {
		return nil, err
	}

	return txns, nil
}
