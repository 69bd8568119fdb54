package services

import (
	"context"

	"fundflow/internal/models/db_models"
	"fundflow/internal/repositories"
	"fundflow/pkg/utils"
)

type TransactionServiceInterface interface {
	ListTransactions(ctx context.Context, userID, role string) ([]db_models.Transaction, error)
}

type TransactionService struct {
	ledger repositories.TransactionRepository
}

func NewTransactionService(ledger repositories.TransactionRepository) TransactionServiceInterface {
	return &TransactionService{
		ledger: ledger,
	}
}

// ListTransactions returns ledger rows newest first. The filter field
// depends on the role: a plain user sees rows where they are the payer,
// an admin sees rows where their id is in the vendor column. The two
// filters are intentionally different and must stay that way.
func (t *TransactionService) ListTransactions(ctx context.Context, userID, role string) ([]db_models.Transaction, error) {
	var (
		txns []db_models.Transaction
		err  error
	)

	if role == "admin" {
		txns, err = t.ledger.ListByVendor(ctx, userID)
	} else {
		txns, err = t.ledger.ListByUser(ctx, userID)
	}

	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return txns, nil
}
