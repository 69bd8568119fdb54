package services

import (
	"context"

	"go.uber.org/zap"

	"fundflow/internal/gateway"
	"fundflow/internal/models/db_models"
	"fundflow/internal/repositories"
	"fundflow/pkg/utils"
)

type TransferServiceInterface interface {
	TransferToVendor(ctx context.Context, vendorUserID string, amount float64, currency string) (*gateway.Transfer, error)
}

type TransferService struct {
	accountRepo repositories.AccountRepository
	ledger      repositories.TransactionRepository
	gw          gateway.PaymentGateway
	logger      *zap.Logger
}

func NewTransferService(
	accountRepo repositories.AccountRepository,
	ledger repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	logger *zap.Logger) TransferServiceInterface {

	return &TransferService{
		accountRepo: accountRepo,
		ledger:      ledger,
		gw:          gw,
		logger:      logger,
	}
}

// TransferToVendor moves captured funds to a vendor's connected account.
// Eligibility is checked before the transfer so an inactive vendor fails
// fast instead of earmarking funds for a processor-side rejection, and every
// successful transfer appends a payout row so the ledger stays authoritative.
func (t *TransferService) TransferToVendor(ctx context.Context, vendorUserID string, amount float64, currency string) (*gateway.Transfer, error) {
	money, err := db_models.MoneyFromMajor(amount, currency)
	if err != nil {
		return nil, err
	}

	vendor, err := t.accountRepo.FindById(ctx, vendorUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vendor == nil {
		return nil, utils.ErrAccountNotFound
	}
	if !vendor.IsOnboarded() {
		return nil, utils.ErrVendorNotOnboarded
	}

	connected, err := t.gw.RetrieveConnectedAccount(ctx, *vendor.ConnectedAccountID)
	if err != nil {
		return nil, err
	}
	if !connected.TransfersActive {
		return nil, utils.ErrVendorNotEligible
	}

	transfer, err := t.gw.CreateTransfer(ctx, gateway.TransferParams{
		AmountMinor:   money.AmountMinor,
		Currency:      money.Currency,
		DestinationID: *vendor.ConnectedAccountID,
	})
	if err != nil {
		return nil, err
	}

	if err := t.recordPayout(ctx, vendor, transfer); err != nil {
		// Funds already moved; surface distinctly so an operator reconciles
		// instead of assuming the transfer never happened.
		t.logger.Error("payout ledger append failed",
			zap.String("transfer_id", transfer.ID),
			zap.String("vendor_user_id", vendorUserID),
			zap.Error(err))
		return transfer, utils.ErrLedgerWrite
	}

	return transfer, nil
}

func (t *TransferService) recordPayout(ctx context.Context, vendor *db_models.Account, transfer *gateway.Transfer) error {
	metadata, err := db_models.NewMetadata(map[string]any{
		"destination": transfer.DestinationID,
	})
	if err != nil {
		return err
	}

	return t.ledger.Append(ctx, &db_models.Transaction{
		UserID:      vendor.ID,
		Vendor:      vendor.ID.String(),
		TransferID:  &transfer.ID,
		AmountMinor: transfer.AmountMinor,
		Currency:    transfer.Currency,
		Status:      db_models.TxnStatusSucceeded,
		Type:        db_models.TxnTypePayout,
		Metadata:    metadata,
	})
}
