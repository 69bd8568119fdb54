package services

import (
	"context"
	"errors"
	"testing"

	"fundflow/internal/gateway"
	"fundflow/internal/models/db_models"
	"fundflow/internal/repositories"
	"fundflow/pkg/utils"
)

func newTransferService(t *testing.T) (*fakeGateway, TransferServiceInterface, *testEnv) {
	t.Helper()

	db := newTestDB(t)
	gw := newFakeGateway()
	accountRepo := repositories.NewAccountRepository(db)
	ledger := repositories.NewTransactionRepository(db)

	svc := NewTransferService(accountRepo, ledger, gw, testLogger())
	return gw, svc, &testEnv{db: db, accountRepo: accountRepo, ledger: ledger}
}

func TestTransferToVendor_NotOnboardedFailsBeforeGateway(t *testing.T) {
	gw, svc, env := newTransferService(t)
	vendor := newTestAccount(t, env.db, nil)

	_, err := svc.TransferToVendor(context.Background(), vendor.ID.String(), 25, "usd")
	if !errors.Is(err, utils.ErrVendorNotOnboarded) {
		t.Fatalf("expected ErrVendorNotOnboarded, got %v", err)
	}

	if gw.transferCalls != 0 {
		t.Errorf("expected no transfer call, got %d", gw.transferCalls)
	}
	if gw.retrieveAcctCalls != 0 {
		t.Errorf("expected no gateway call at all, got %d retrieves", gw.retrieveAcctCalls)
	}
}

func TestTransferToVendor_InactiveCapabilityFailsFast(t *testing.T) {
	gw, svc, env := newTransferService(t)
	vendor := newTestAccount(t, env.db, func(a *db_models.Account) {
		a.ConnectedAccountID = strPtr("acct_1")
	})

	gw.account = &gateway.ConnectedAccount{ID: "acct_1", TransfersActive: false}

	_, err := svc.TransferToVendor(context.Background(), vendor.ID.String(), 25, "usd")
	if !errors.Is(err, utils.ErrVendorNotEligible) {
		t.Fatalf("expected ErrVendorNotEligible, got %v", err)
	}
	if gw.transferCalls != 0 {
		t.Errorf("expected no transfer after failed eligibility check, got %d", gw.transferCalls)
	}
}

func TestTransferToVendor_AppendsPayoutRow(t *testing.T) {
	gw, svc, env := newTransferService(t)
	vendor := newTestAccount(t, env.db, func(a *db_models.Account) {
		a.ConnectedAccountID = strPtr("acct_1")
	})

	gw.account = &gateway.ConnectedAccount{ID: "acct_1", TransfersActive: true, PayoutsEnabled: true}

	transfer, err := svc.TransferToVendor(context.Background(), vendor.ID.String(), 25.50, "usd")
	if err != nil {
		t.Fatalf("TransferToVendor: %v", err)
	}

	if transfer.AmountMinor != 2550 {
		t.Errorf("expected 2550 minor units, got %d", transfer.AmountMinor)
	}
	if gw.transferParams[0].DestinationID != "acct_1" {
		t.Errorf("expected transfer to acct_1, got %s", gw.transferParams[0].DestinationID)
	}

	var txns []db_models.Transaction
	if err := env.db.Find(&txns).Error; err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 payout ledger row, got %d", len(txns))
	}
	row := txns[0]
	if row.Type != db_models.TxnTypePayout {
		t.Errorf("expected payout type, got %s", row.Type)
	}
	if row.Status != db_models.TxnStatusSucceeded {
		t.Errorf("expected succeeded status, got %s", row.Status)
	}
	if row.Vendor != vendor.ID.String() {
		t.Errorf("expected vendor column %s, got %s", vendor.ID.String(), row.Vendor)
	}
	if row.TransferID == nil || *row.TransferID != transfer.ID {
		t.Error("expected transfer id recorded on the row")
	}
	if row.PaymentIntentID != nil {
		t.Error("expected no payment intent id on a payout row")
	}
}
