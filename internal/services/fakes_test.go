package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fundflow/internal/gateway"
	"fundflow/internal/models/db_models"
	"fundflow/internal/repositories"
)

type testEnv struct {
	db          *gorm.DB
	accountRepo repositories.AccountRepository
	ledger      repositories.TransactionRepository
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&db_models.Account{}, &db_models.Transaction{}, &db_models.Plan{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newTestAccount(t *testing.T, db *gorm.DB, mutate func(*db_models.Account)) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		Email: fmt.Sprintf("user-%d@example.com", accountSeq),
		Role:  "user",
	}
	accountSeq++
	if mutate != nil {
		mutate(account)
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

var accountSeq int

func strPtr(s string) *string { return &s }

type refundCall struct {
	paymentIntentID string
	amountMinor     *int64
}

type setCancelCall struct {
	subscriptionID string
	cancel         bool
}

// fakeGateway records every call so tests can assert both what was sent to
// the processor and that nothing was sent at all.
type fakeGateway struct {
	createCustomerCalls int
	createAccountCalls  int
	createLinkCalls     int
	transferCalls       int
	retrieveAcctCalls   int

	linkErr   error
	deleteErr error

	account *gateway.ConnectedAccount
	intents map[string]*gateway.PaymentIntent

	intentParams   []gateway.CreateIntentParams
	transferParams []gateway.TransferParams
	refunds        []refundCall

	products    []string
	priceParams []gateway.PriceParams
	subParams   []gateway.SubscriptionParams

	cancelCalls    []string
	setCancelCalls []setCancelCall

	subscription *gateway.Subscription
	invoice      *gateway.Invoice

	deletedAccounts []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		intents: map[string]*gateway.PaymentIntent{},
	}
}

func (f *fakeGateway) CreateCustomer(ctx context.Context, email string) (*gateway.Customer, error) {
	f.createCustomerCalls++
	return &gateway.Customer{ID: fmt.Sprintf("cus_%d", f.createCustomerCalls), Email: email}, nil
}

func (f *fakeGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (*gateway.PaymentMethod, error) {
	return &gateway.PaymentMethod{ID: paymentMethodID, CustomerID: customerID, Type: "card", Last4: "4242"}, nil
}

func (f *fakeGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	return nil
}

func (f *fakeGateway) GetPaymentMethod(ctx context.Context, paymentMethodID string) (*gateway.PaymentMethod, error) {
	return &gateway.PaymentMethod{ID: paymentMethodID, Type: "card", Last4: "4242"}, nil
}

func (f *fakeGateway) CreateIntent(ctx context.Context, params gateway.CreateIntentParams) (*gateway.PaymentIntent, error) {
	f.intentParams = append(f.intentParams, params)
	id := fmt.Sprintf("pi_%d", len(f.intentParams))
	intent := &gateway.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       "requires_confirmation",
		AmountMinor:  params.AmountMinor,
		Currency:     params.Currency,
		CustomerID:   params.CustomerID,
	}
	if params.Confirm {
		intent.Status = gateway.IntentStatusSucceeded
	}
	f.intents[id] = intent
	return intent, nil
}

func (f *fakeGateway) RetrieveIntent(ctx context.Context, paymentIntentID string) (*gateway.PaymentIntent, error) {
	intent, ok := f.intents[paymentIntentID]
	if !ok {
		return nil, &gateway.Error{Op: "retrieve payment intent", TargetID: paymentIntentID, Err: errors.New("no such intent")}
	}
	return intent, nil
}

func (f *fakeGateway) CreateConnectedAccount(ctx context.Context, email string) (*gateway.ConnectedAccount, error) {
	f.createAccountCalls++
	return &gateway.ConnectedAccount{ID: fmt.Sprintf("acct_%d", f.createAccountCalls)}, nil
}

func (f *fakeGateway) CreateAccountLink(ctx context.Context, connectedAccountID string) (*gateway.AccountLink, error) {
	f.createLinkCalls++
	if f.linkErr != nil {
		return nil, f.linkErr
	}
	return &gateway.AccountLink{URL: fmt.Sprintf("https://onboard.example/%s/%d", connectedAccountID, f.createLinkCalls)}, nil
}

func (f *fakeGateway) RetrieveConnectedAccount(ctx context.Context, connectedAccountID string) (*gateway.ConnectedAccount, error) {
	f.retrieveAcctCalls++
	if f.account != nil {
		return f.account, nil
	}
	return &gateway.ConnectedAccount{ID: connectedAccountID}, nil
}

func (f *fakeGateway) DeleteConnectedAccount(ctx context.Context, connectedAccountID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedAccounts = append(f.deletedAccounts, connectedAccountID)
	return nil
}

func (f *fakeGateway) CreateTransfer(ctx context.Context, params gateway.TransferParams) (*gateway.Transfer, error) {
	f.transferCalls++
	f.transferParams = append(f.transferParams, params)
	return &gateway.Transfer{
		ID:            fmt.Sprintf("tr_%d", f.transferCalls),
		AmountMinor:   params.AmountMinor,
		Currency:      params.Currency,
		DestinationID: params.DestinationID,
	}, nil
}

func (f *fakeGateway) CreateRefund(ctx context.Context, paymentIntentID string, amountMinor *int64) (*gateway.Refund, error) {
	f.refunds = append(f.refunds, refundCall{paymentIntentID: paymentIntentID, amountMinor: amountMinor})
	amount := int64(0)
	if amountMinor != nil {
		amount = *amountMinor
	}
	return &gateway.Refund{
		ID:              fmt.Sprintf("re_%d", len(f.refunds)),
		PaymentIntentID: paymentIntentID,
		AmountMinor:     amount,
		Status:          "succeeded",
	}, nil
}

func (f *fakeGateway) CreateProduct(ctx context.Context, name, description string) (*gateway.Product, error) {
	f.products = append(f.products, name)
	return &gateway.Product{ID: fmt.Sprintf("prod_%d", len(f.products)), Name: name}, nil
}

func (f *fakeGateway) CreatePrice(ctx context.Context, params gateway.PriceParams) (*gateway.Price, error) {
	f.priceParams = append(f.priceParams, params)
	return &gateway.Price{ID: fmt.Sprintf("price_%d", len(f.priceParams)), ProductID: params.ProductID}, nil
}

func (f *fakeGateway) CreateSubscription(ctx context.Context, params gateway.SubscriptionParams) (*gateway.Subscription, error) {
	f.subParams = append(f.subParams, params)
	return &gateway.Subscription{
		ID:              fmt.Sprintf("sub_%d", len(f.subParams)),
		CustomerID:      params.CustomerID,
		Status:          "active",
		LatestInvoiceID: "in_1",
	}, nil
}

func (f *fakeGateway) RetrieveSubscription(ctx context.Context, subscriptionID string) (*gateway.Subscription, error) {
	if f.subscription != nil {
		return f.subscription, nil
	}
	return &gateway.Subscription{ID: subscriptionID, Status: "active"}, nil
}

func (f *fakeGateway) CancelSubscription(ctx context.Context, subscriptionID string) (*gateway.Subscription, error) {
	f.cancelCalls = append(f.cancelCalls, subscriptionID)
	return &gateway.Subscription{ID: subscriptionID, Status: "canceled"}, nil
}

func (f *fakeGateway) SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*gateway.Subscription, error) {
	f.setCancelCalls = append(f.setCancelCalls, setCancelCall{subscriptionID: subscriptionID, cancel: cancel})
	return &gateway.Subscription{ID: subscriptionID, Status: "active", CancelAtPeriodEnd: cancel}, nil
}

func (f *fakeGateway) RetrieveInvoice(ctx context.Context, invoiceID string) (*gateway.Invoice, error) {
	if f.invoice != nil {
		return f.invoice, nil
	}
	return &gateway.Invoice{ID: invoiceID}, nil
}

var _ gateway.PaymentGateway = (*fakeGateway)(nil)

func testLogger() *zap.Logger { return zap.NewNop() }
