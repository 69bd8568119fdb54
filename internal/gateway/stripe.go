package gateway

import (
	"context"
	"time"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"go.uber.org/zap"
)

const defaultCallTimeout = 15 * time.Second

type StripeConfig struct {
	SecretKey   string
	RefreshURL  string // onboarding link refresh target
	ReturnURL   string // onboarding link completion target
	CallTimeout time.Duration
}

type stripeGateway struct {
	sc      *client.API
	cfg     StripeConfig
	logger  *zap.Logger
	timeout time.Duration
}

func NewStripeGateway(cfg StripeConfig, logger *zap.Logger) PaymentGateway {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	return &stripeGateway{
		sc:      sc,
		cfg:     cfg,
		logger:  logger,
		timeout: timeout,
	}
}

// callCtx bounds every processor call. A timeout is reported as a retryable
// gateway error; the true outcome stays unknown until a status re-query.
func (g *stripeGateway) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

func (g *stripeGateway) CreateCustomer(ctx context.Context, email string) (*Customer, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.Context = ctx

	cus, err := g.sc.Customers.New(params)
	if err != nil {
		return nil, wrap("create customer", email, err)
	}

	g.logger.Info("customer created", zap.String("customer_id", cus.ID))
	return &Customer{ID: cus.ID, Email: cus.Email}, nil
}

func (g *stripeGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (*PaymentMethod, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	params.Context = ctx

	pm, err := g.sc.PaymentMethods.Attach(paymentMethodID, params)
	if err != nil {
		return nil, wrap("attach payment method", paymentMethodID, err)
	}
	return toPaymentMethod(pm), nil
}

func (g *stripeGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	params.Context = ctx

	_, err := g.sc.Customers.Update(customerID, params)
	return wrap("set default payment method", customerID, err)
}

func (g *stripeGateway) GetPaymentMethod(ctx context.Context, paymentMethodID string) (*PaymentMethod, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	pm, err := g.sc.PaymentMethods.Get(paymentMethodID, params)
	if err != nil {
		return nil, wrap("get payment method", paymentMethodID, err)
	}
	return toPaymentMethod(pm), nil
}

func (g *stripeGateway) CreateIntent(ctx context.Context, p CreateIntentParams) (*PaymentIntent, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountMinor),
		Currency: stripe.String(p.Currency),
		Customer: stripe.String(p.CustomerID),
		Confirm:  stripe.Bool(p.Confirm),
	}
	if p.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(p.PaymentMethodID)
	}
	params.Context = ctx

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, wrap("create payment intent", p.CustomerID, err)
	}

	g.logger.Info("payment intent created",
		zap.String("payment_intent_id", pi.ID),
		zap.Int64("amount_minor", pi.Amount),
		zap.Bool("confirm", p.Confirm))
	return toPaymentIntent(pi), nil
}

func (g *stripeGateway) RetrieveIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.sc.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return nil, wrap("retrieve payment intent", paymentIntentID, err)
	}
	return toPaymentIntent(pi), nil
}

func (g *stripeGateway) CreateConnectedAccount(ctx context.Context, email string) (*ConnectedAccount, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx

	acct, err := g.sc.Account.New(params)
	if err != nil {
		return nil, wrap("create connected account", email, err)
	}

	g.logger.Info("connected account created", zap.String("account_id", acct.ID))
	return toConnectedAccount(acct), nil
}

func (g *stripeGateway) CreateAccountLink(ctx context.Context, connectedAccountID string) (*AccountLink, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.AccountLinkParams{
		Account:    stripe.String(connectedAccountID),
		RefreshURL: stripe.String(g.cfg.RefreshURL),
		ReturnURL:  stripe.String(g.cfg.ReturnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := g.sc.AccountLinks.New(params)
	if err != nil {
		return nil, wrap("create account link", connectedAccountID, err)
	}
	return &AccountLink{URL: link.URL, ExpiresAt: link.ExpiresAt}, nil
}

func (g *stripeGateway) RetrieveConnectedAccount(ctx context.Context, connectedAccountID string) (*ConnectedAccount, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := g.sc.Account.GetByID(connectedAccountID, params)
	if err != nil {
		return nil, wrap("retrieve connected account", connectedAccountID, err)
	}
	return toConnectedAccount(acct), nil
}

func (g *stripeGateway) DeleteConnectedAccount(ctx context.Context, connectedAccountID string) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.AccountParams{}
	params.Context = ctx

	_, err := g.sc.Account.Del(connectedAccountID, params)
	if err != nil {
		return wrap("delete connected account", connectedAccountID, err)
	}

	g.logger.Info("connected account deleted", zap.String("account_id", connectedAccountID))
	return nil
}

func (g *stripeGateway) CreateTransfer(ctx context.Context, p TransferParams) (*Transfer, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(p.AmountMinor),
		Currency:    stripe.String(p.Currency),
		Destination: stripe.String(p.DestinationID),
	}
	params.Context = ctx

	tr, err := g.sc.Transfers.New(params)
	if err != nil {
		return nil, wrap("create transfer", p.DestinationID, err)
	}

	g.logger.Info("transfer created",
		zap.String("transfer_id", tr.ID),
		zap.String("destination", p.DestinationID),
		zap.Int64("amount_minor", p.AmountMinor))
	return &Transfer{
		ID:            tr.ID,
		AmountMinor:   tr.Amount,
		Currency:      string(tr.Currency),
		DestinationID: p.DestinationID,
	}, nil
}

func (g *stripeGateway) CreateRefund(ctx context.Context, paymentIntentID string, amountMinor *int64) (*Refund, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	if amountMinor != nil {
		// Omitting Amount entirely lets the processor default to a full
		// refund; zero is never sent in its place.
		params.Amount = stripe.Int64(*amountMinor)
	}
	params.Context = ctx

	ref, err := g.sc.Refunds.New(params)
	if err != nil {
		return nil, wrap("create refund", paymentIntentID, err)
	}

	g.logger.Info("refund created",
		zap.String("refund_id", ref.ID),
		zap.String("payment_intent_id", paymentIntentID))
	return &Refund{
		ID:              ref.ID,
		PaymentIntentID: paymentIntentID,
		AmountMinor:     ref.Amount,
		Status:          string(ref.Status),
	}, nil
}

func (g *stripeGateway) CreateProduct(ctx context.Context, name, description string) (*Product, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.ProductParams{Name: stripe.String(name)}
	if description != "" {
		params.Description = stripe.String(description)
	}
	params.Context = ctx

	prod, err := g.sc.Products.New(params)
	if err != nil {
		return nil, wrap("create product", name, err)
	}
	return &Product{ID: prod.ID, Name: prod.Name}, nil
}

func (g *stripeGateway) CreatePrice(ctx context.Context, p PriceParams) (*Price, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.PriceParams{
		Product:    stripe.String(p.ProductID),
		UnitAmount: stripe.Int64(p.AmountMinor),
		Currency:   stripe.String(p.Currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(p.Interval),
		},
	}
	params.Context = ctx

	price, err := g.sc.Prices.New(params)
	if err != nil {
		return nil, wrap("create price", p.ProductID, err)
	}
	return &Price{ID: price.ID, ProductID: p.ProductID}, nil
}

func (g *stripeGateway) CreateSubscription(ctx context.Context, p SubscriptionParams) (*Subscription, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(p.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(p.PriceID)},
		},
	}
	if p.ConnectedAccountID != nil {
		params.TransferData = &stripe.SubscriptionTransferDataParams{
			Destination: stripe.String(*p.ConnectedAccountID),
		}
		if p.ApplicationFeePercent != nil {
			params.ApplicationFeePercent = stripe.Float64(*p.ApplicationFeePercent)
		}
	}
	params.Context = ctx

	sub, err := g.sc.Subscriptions.New(params)
	if err != nil {
		return nil, wrap("create subscription", p.CustomerID, err)
	}

	g.logger.Info("subscription created",
		zap.String("subscription_id", sub.ID),
		zap.String("customer_id", p.CustomerID))
	return toSubscription(sub), nil
}

func (g *stripeGateway) RetrieveSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := g.sc.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, wrap("retrieve subscription", subscriptionID, err)
	}
	return toSubscription(sub), nil
}

func (g *stripeGateway) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	sub, err := g.sc.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		return nil, wrap("cancel subscription", subscriptionID, err)
	}
	return toSubscription(sub), nil
}

func (g *stripeGateway) SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*Subscription, error) {
	ctx, cancelFn := g.callCtx(ctx)
	defer cancelFn()

	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(cancel),
	}
	params.Context = ctx

	sub, err := g.sc.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		return nil, wrap("update subscription", subscriptionID, err)
	}
	return toSubscription(sub), nil
}

func (g *stripeGateway) RetrieveInvoice(ctx context.Context, invoiceID string) (*Invoice, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	params := &stripe.InvoiceParams{}
	params.Context = ctx

	inv, err := g.sc.Invoices.Get(invoiceID, params)
	if err != nil {
		return nil, wrap("retrieve invoice", invoiceID, err)
	}

	out := &Invoice{ID: inv.ID, AmountPaidMinor: inv.AmountPaid}
	if inv.PaymentIntent != nil {
		out.PaymentIntentID = inv.PaymentIntent.ID
	}
	return out, nil
}

func toPaymentMethod(pm *stripe.PaymentMethod) *PaymentMethod {
	out := &PaymentMethod{
		ID:   pm.ID,
		Type: string(pm.Type),
	}
	if pm.Customer != nil {
		out.CustomerID = pm.Customer.ID
	}
	if pm.Card != nil {
		out.Last4 = pm.Card.Last4
	}
	return out
}

func toPaymentIntent(pi *stripe.PaymentIntent) *PaymentIntent {
	out := &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	return out
}

func toConnectedAccount(acct *stripe.Account) *ConnectedAccount {
	out := &ConnectedAccount{
		ID:               acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}
	if acct.Capabilities != nil {
		out.TransfersActive = acct.Capabilities.Transfers == stripe.AccountCapabilityStatusActive
	}
	return out
}

func toSubscription(sub *stripe.Subscription) *Subscription {
	out := &Subscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.LatestInvoice != nil {
		out.LatestInvoiceID = sub.LatestInvoice.ID
	}
	return out
}
