package services

import (
	"context"

	"go.uber.org/zap"

	"fundflow/internal/gateway"
	"fundflow/internal/models/db_models"
)

type RefundServiceInterface interface {
	Refund(ctx context.Context, paymentIntentID string, amount *float64) (*gateway.Refund, error)
}

// RefundService only executes the refund against the processor. Ledger
// bookkeeping (marking the matching row refunded) stays with the caller so
// a ledger failure is never mistaken for a refund failure.
type RefundService struct {
	gw     gateway.PaymentGateway
	logger *zap.Logger
}

func NewRefundService(gw gateway.PaymentGateway, logger *zap.Logger) RefundServiceInterface {
	return &RefundService{
		gw:     gw,
		logger: logger,
	}
}

func (r *RefundService) Refund(ctx context.Context, paymentIntentID string, amount *float64) (*gateway.Refund, error) {
	// A nil amount is passed through untouched: the processor's own default
	// performs the full refund, zero is never substituted.
	var amountMinor *int64
	if amount != nil {
		minor, err := db_models.MinorUnits(*amount)
		if err != nil {
			return nil, err
		}
		amountMinor = &minor
	}

	refund, err := r.gw.CreateRefund(ctx, paymentIntentID, amountMinor)
	if err != nil {
		return nil, err
	}

	r.logger.Info("refund executed",
		zap.String("payment_intent_id", paymentIntentID),
		zap.String("refund_id", refund.ID))
	return refund, nil
}
