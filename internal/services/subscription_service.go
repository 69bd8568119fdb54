package services

import (
	"context"

	"go.uber.org/zap"

	"fundflow/internal/gateway"
	"fundflow/internal/models/db_models"
	"fundflow/internal/repositories"
	"fundflow/pkg/utils"
)

type CreatePlanInput struct {
	Code        string
	Name        string
	Description string
	AmountMinor int64 // already minor units at this layer, no conversion
	Currency    string
	Interval    string // day | week | month | year
}

type SubscriptionServiceInterface interface {
	CreatePlan(ctx context.Context, input CreatePlanInput) (*db_models.Plan, error)
	ListPlans(ctx context.Context) ([]db_models.Plan, error)
	CreateSubscription(ctx context.Context, customerID, priceID string, connectedAccountID *string, applicationFeePercent *float64) (*gateway.Subscription, error)
	Cancel(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*gateway.Subscription, error)
	Resume(ctx context.Context, subscriptionID string) (*gateway.Subscription, error)
	RefundLatestInvoice(ctx context.Context, subscriptionID string) (*gateway.Refund, error)
}

type SubscriptionService struct {
	planRepo repositories.IPlanRepository
	gw       gateway.PaymentGateway
	logger   *zap.Logger
}

func NewSubscriptionService(planRepo repositories.IPlanRepository, gw gateway.PaymentGateway, logger *zap.Logger) SubscriptionServiceInterface {
	return &SubscriptionService{
		planRepo: planRepo,
		gw:       gw,
		logger:   logger,
	}
}

func (s *SubscriptionService) CreatePlan(ctx context.Context, input CreatePlanInput) (*db_models.Plan, error) {
	money, err := db_models.MoneyFromMinor(input.AmountMinor, input.Currency)
	if err != nil {
		return nil, err
	}

	period := db_models.BillingPeriod(input.Interval)
	switch period {
	case db_models.PeriodDay, db_models.PeriodWeek, db_models.PeriodMonth, db_models.PeriodYear:
	default:
		return nil, utils.ErrInvalidInterval
	}

	product, err := s.gw.CreateProduct(ctx, input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	price, err := s.gw.CreatePrice(ctx, gateway.PriceParams{
		ProductID:   product.ID,
		AmountMinor: money.AmountMinor,
		Currency:    money.Currency,
		Interval:    string(period),
	})
	if err != nil {
		return nil, err
	}

	plan := &db_models.Plan{
		Code:              input.Code,
		Name:              input.Name,
		Period:            period,
		PriceMinor:        money.AmountMinor,
		Currency:          money.Currency,
		IsActive:          true,
		ProviderProductID: product.ID,
		ProviderPriceID:   price.ID,
	}
	if input.Description != "" {
		plan.Description = &input.Description
	}

	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("plan created",
		zap.String("code", plan.Code),
		zap.String("product_id", product.ID),
		zap.String("price_id", price.ID))
	return plan, nil
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

// CreateSubscription bills the customer on the given price. With a connected
// account the funds are split through transfer_data and the platform keeps
// the application fee; without one the subscription is platform-only.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, customerID, priceID string, connectedAccountID *string, applicationFeePercent *float64) (*gateway.Subscription, error) {
	return s.gw.CreateSubscription(ctx, gateway.SubscriptionParams{
		CustomerID:            customerID,
		PriceID:               priceID,
		ConnectedAccountID:    connectedAccountID,
		ApplicationFeePercent: applicationFeePercent,
	})
}

// Cancel is immediate and irreversible when atPeriodEnd is false; a
// scheduled cancellation can still be undone through Resume.
func (s *SubscriptionService) Cancel(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*gateway.Subscription, error) {
	if atPeriodEnd {
		return s.gw.SetCancelAtPeriodEnd(ctx, subscriptionID, true)
	}
	return s.gw.CancelSubscription(ctx, subscriptionID)
}

func (s *SubscriptionService) Resume(ctx context.Context, subscriptionID string) (*gateway.Subscription, error) {
	return s.gw.SetCancelAtPeriodEnd(ctx, subscriptionID, false)
}

// RefundLatestInvoice refunds the full amount of the most recent invoice.
// Zero-amount and trial invoices carry no payment intent and cannot be
// refunded.
func (s *SubscriptionService) RefundLatestInvoice(ctx context.Context, subscriptionID string) (*gateway.Refund, error) {
	sub, err := s.gw.RetrieveSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	if sub.LatestInvoiceID == "" {
		return nil, utils.ErrNoPaymentIntentOnInvoice
	}

	invoice, err := s.gw.RetrieveInvoice(ctx, sub.LatestInvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.PaymentIntentID == "" {
		return nil, utils.ErrNoPaymentIntentOnInvoice
	}

	return s.gw.CreateRefund(ctx, invoice.PaymentIntentID, nil)
}
