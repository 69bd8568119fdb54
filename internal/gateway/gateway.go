package gateway

import (
	"context"
	"fmt"
)

// PaymentGateway is the narrow view of the external processor this core
// orchestrates against. It is injected everywhere (never a package-level
// singleton) so tests can run against a fake instead of a live sandbox.
//
// The processor is eventually consistent and calls are not retried here;
// retry policy belongs to the caller because a blind retry can double-charge.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email string) (*Customer, error)

	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (*PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	GetPaymentMethod(ctx context.Context, paymentMethodID string) (*PaymentMethod, error)

	CreateIntent(ctx context.Context, params CreateIntentParams) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)

	CreateConnectedAccount(ctx context.Context, email string) (*ConnectedAccount, error)
	CreateAccountLink(ctx context.Context, connectedAccountID string) (*AccountLink, error)
	RetrieveConnectedAccount(ctx context.Context, connectedAccountID string) (*ConnectedAccount, error)
	DeleteConnectedAccount(ctx context.Context, connectedAccountID string) error

	CreateTransfer(ctx context.Context, params TransferParams) (*Transfer, error)

	// amountMinor nil means full refund, passed through to the processor's
	// own default, never replaced by zero.
	CreateRefund(ctx context.Context, paymentIntentID string, amountMinor *int64) (*Refund, error)

	CreateProduct(ctx context.Context, name, description string) (*Product, error)
	CreatePrice(ctx context.Context, params PriceParams) (*Price, error)

	CreateSubscription(ctx context.Context, params SubscriptionParams) (*Subscription, error)
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*Subscription, error)
	RetrieveInvoice(ctx context.Context, invoiceID string) (*Invoice, error)
}

const IntentStatusSucceeded = "succeeded"

type Customer struct {
	ID    string
	Email string
}

type PaymentMethod struct {
	ID         string
	CustomerID string
	Type       string
	Last4      string
}

type CreateIntentParams struct {
	CustomerID      string
	PaymentMethodID string // empty leaves the intent for client-side confirmation
	AmountMinor     int64
	Currency        string
	Confirm         bool
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountMinor  int64
	Currency     string
	CustomerID   string
}

type ConnectedAccount struct {
	ID               string
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
	TransfersActive  bool
}

type AccountLink struct {
	URL       string
	ExpiresAt int64
}

type TransferParams struct {
	AmountMinor   int64
	Currency      string
	DestinationID string // connected account
}

type Transfer struct {
	ID            string
	AmountMinor   int64
	Currency      string
	DestinationID string
}

type Refund struct {
	ID              string
	PaymentIntentID string
	AmountMinor     int64
	Status          string
}

type Product struct {
	ID   string
	Name string
}

type PriceParams struct {
	ProductID   string
	AmountMinor int64
	Currency    string
	Interval    string // day | week | month | year
}

type Price struct {
	ID        string
	ProductID string
}

type SubscriptionParams struct {
	CustomerID string
	PriceID    string

	// When set, funds are split to the connected account with the given
	// application fee retained by the platform.
	ConnectedAccountID    *string
	ApplicationFeePercent *float64
}

type Subscription struct {
	ID                string
	CustomerID        string
	Status            string
	CancelAtPeriodEnd bool
	LatestInvoiceID   string
}

type Invoice struct {
	ID              string
	PaymentIntentID string // empty for zero-amount and trial invoices
	AmountPaidMinor int64
}

// Error wraps a processor failure with the operation and target so a failed
// money movement can be reconciled manually. The processor detail is never
// swallowed.
type Error struct {
	Op       string
	TargetID string
	Err      error
}

func (e *Error) Error() string {
	if e.TargetID == "" {
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway %s (%s): %v", e.Op, e.TargetID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, targetID string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, TargetID: targetID, Err: err}
}
