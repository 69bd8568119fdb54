package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fundflow/internal/gateway"
	"fundflow/internal/models/db_models"
	"fundflow/internal/repositories"
	"fundflow/pkg/utils"
)

type PaymentServiceInterface interface {
	AttachPaymentMethod(ctx context.Context, userID, paymentMethodID string) (*gateway.PaymentMethod, error)
	CreateIntent(ctx context.Context, userID string, amount float64, currency, paymentMethodID string) (string, error)
	VerifyIntent(ctx context.Context, userID, paymentIntentID string) (*db_models.Transaction, error)
}

type PaymentService struct {
	accountRepo repositories.AccountRepository
	ledger      repositories.TransactionRepository
	gw          gateway.PaymentGateway
	logger      *zap.Logger
}

func NewPaymentService(
	accountRepo repositories.AccountRepository,
	ledger repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	logger *zap.Logger) PaymentServiceInterface {

	return &PaymentService{
		accountRepo: accountRepo,
		ledger:      ledger,
		gw:          gw,
		logger:      logger,
	}
}

// AttachPaymentMethod attaches the method, makes it the invoice default and
// re-retrieves it. The second retrieve guards against eventual-consistency
// lag between the attach and update calls.
func (p *PaymentService) AttachPaymentMethod(ctx context.Context, userID, paymentMethodID string) (*gateway.PaymentMethod, error) {
	account, err := p.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.CustomerID == nil || *account.CustomerID == "" {
		return nil, utils.ErrNoCustomer
	}

	if _, err := p.gw.AttachPaymentMethod(ctx, *account.CustomerID, paymentMethodID); err != nil {
		return nil, err
	}
	if err := p.gw.SetDefaultPaymentMethod(ctx, *account.CustomerID, paymentMethodID); err != nil {
		return nil, err
	}

	return p.gw.GetPaymentMethod(ctx, paymentMethodID)
}

// CreateIntent converts the major-unit amount once, creates the processor
// customer lazily on first use, and returns only the client secret. No
// ledger row is written here: the intent may never be confirmed, and
// abandoned intents would pollute the ledger.
func (p *PaymentService) CreateIntent(ctx context.Context, userID string, amount float64, currency, paymentMethodID string) (string, error) {
	money, err := db_models.MoneyFromMajor(amount, currency)
	if err != nil {
		return "", err
	}

	account, err := p.accountRepo.FindById(ctx, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	customerID, err := p.ensureCustomer(ctx, account)
	if err != nil {
		return "", err
	}

	intent, err := p.gw.CreateIntent(ctx, gateway.CreateIntentParams{
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		AmountMinor:     money.AmountMinor,
		Currency:        money.Currency,
		// Confirm server-side only when the caller supplied a payment
		// method; otherwise the client confirms with the secret.
		Confirm: paymentMethodID != "",
	})
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}

// VerifyIntent reconciles a processor intent into the ledger. Verification
// is idempotent and side-effect-free on failure: a non-succeeded intent
// writes nothing, and a second verification of a succeeded intent updates
// the existing row matched on payment_intent_id instead of inserting.
func (p *PaymentService) VerifyIntent(ctx context.Context, userID, paymentIntentID string) (*db_models.Transaction, error) {
	account, err := p.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	intent, err := p.gw.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != gateway.IntentStatusSucceeded {
		return nil, utils.ErrPaymentNotSucceeded
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	txn := &db_models.Transaction{
		UserID:          uid,
		PaymentIntentID: &intent.ID,
		AmountMinor:     intent.AmountMinor,
		Currency:        intent.Currency,
		Status:          db_models.TxnStatusSucceeded,
		Type:            db_models.TxnTypePurchase,
	}

	if err := p.ledger.UpsertByPaymentIntent(ctx, txn); err != nil {
		// The processor charged but the ledger write failed; the idempotent
		// replay path is re-verifying the same intent id.
		p.logger.Error("ledger upsert failed after succeeded intent",
			zap.String("payment_intent_id", paymentIntentID),
			zap.Error(err))
		return nil, utils.ErrLedgerWrite
	}

	stored, err := p.ledger.FindByPaymentIntent(ctx, paymentIntentID)
	if err != nil || stored == nil {
		return txn, nil
	}
	return stored, nil
}

func (p *PaymentService) ensureCustomer(ctx context.Context, account *db_models.Account) (string, error) {
	if account.CustomerID != nil && *account.CustomerID != "" {
		return *account.CustomerID, nil
	}

	customer, err := p.gw.CreateCustomer(ctx, account.Email)
	if err != nil {
		return "", err
	}
	if err := p.accountRepo.UpdateCustomerID(ctx, account.ID.String(), customer.ID); err != nil {
		return "", utils.ErrDatabaseError
	}

	p.logger.Info("customer created for account",
		zap.String("user_id", account.ID.String()),
		zap.String("customer_id", customer.ID))
	return customer.ID, nil
}
