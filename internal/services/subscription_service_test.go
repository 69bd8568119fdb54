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

func newSubscriptionService(t *testing.T) (*fakeGateway, SubscriptionServiceInterface, repositories.IPlanRepository) {
	t.Helper()

	db := newTestDB(t)
	gw := newFakeGateway()
	planRepo := repositories.NewPlanRepository(db)

	svc := NewSubscriptionService(planRepo, gw, testLogger())
	return gw, svc, planRepo
}

func TestCreatePlan_PersistsProviderIDs(t *testing.T) {
	gw, svc, planRepo := newSubscriptionService(t)

	plan, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Code:        "pro_monthly",
		Name:        "Pro",
		Description: "Monthly pro plan",
		AmountMinor: 999,
		Currency:    "usd",
		Interval:    "month",
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	if plan.ProviderProductID == "" || plan.ProviderPriceID == "" {
		t.Error("expected provider product and price ids on the plan")
	}

	// Plan amounts are minor units already; no conversion may happen.
	if gw.priceParams[0].AmountMinor != 999 {
		t.Errorf("expected 999 minor units at the gateway, got %d", gw.priceParams[0].AmountMinor)
	}
	if gw.priceParams[0].Interval != "month" {
		t.Errorf("expected month interval, got %s", gw.priceParams[0].Interval)
	}

	stored, err := planRepo.GetPlanByCode(context.Background(), "pro_monthly")
	if err != nil || stored == nil {
		t.Fatalf("expected plan persisted, got %v / %v", stored, err)
	}
	if stored.Period != db_models.PeriodMonth {
		t.Errorf("expected month period, got %s", stored.Period)
	}
}

func TestCreatePlan_RejectsUnknownInterval(t *testing.T) {
	gw, svc, _ := newSubscriptionService(t)

	_, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Code:        "odd",
		Name:        "Odd",
		AmountMinor: 100,
		Currency:    "usd",
		Interval:    "fortnight",
	})
	if !errors.Is(err, utils.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if len(gw.products) != 0 {
		t.Errorf("expected no gateway product created, got %d", len(gw.products))
	}
}

func TestCreateSubscription_SplitsFundsWhenConnectedAccountGiven(t *testing.T) {
	gw, svc, _ := newSubscriptionService(t)

	acct := "acct_7"
	fee := 10.0
	if _, err := svc.CreateSubscription(context.Background(), "cus_1", "price_1", &acct, &fee); err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}

	params := gw.subParams[0]
	if params.ConnectedAccountID == nil || *params.ConnectedAccountID != "acct_7" {
		t.Error("expected transfer destination acct_7")
	}
	if params.ApplicationFeePercent == nil || *params.ApplicationFeePercent != 10.0 {
		t.Error("expected 10 percent application fee")
	}
}

func TestCreateSubscription_PlatformOnlyWithoutConnectedAccount(t *testing.T) {
	gw, svc, _ := newSubscriptionService(t)

	if _, err := svc.CreateSubscription(context.Background(), "cus_1", "price_1", nil, nil); err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}

	if gw.subParams[0].ConnectedAccountID != nil {
		t.Error("expected no transfer destination")
	}
}

func TestCancel_ImmediateVersusScheduled(t *testing.T) {
	t.Run("immediate", func(t *testing.T) {
		gw, svc, _ := newSubscriptionService(t)

		if _, err := svc.Cancel(context.Background(), "sub_1", false); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if len(gw.cancelCalls) != 1 {
			t.Errorf("expected 1 immediate cancellation, got %d", len(gw.cancelCalls))
		}
		if len(gw.setCancelCalls) != 0 {
			t.Errorf("expected no scheduled cancellation, got %d", len(gw.setCancelCalls))
		}
	})

	t.Run("at period end", func(t *testing.T) {
		gw, svc, _ := newSubscriptionService(t)

		sub, err := svc.Cancel(context.Background(), "sub_1", true)
		if err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if !sub.CancelAtPeriodEnd {
			t.Error("expected cancel_at_period_end set")
		}
		if len(gw.cancelCalls) != 0 {
			t.Errorf("expected no immediate cancellation, got %d", len(gw.cancelCalls))
		}
	})
}

func TestResume_ClearsScheduledCancellation(t *testing.T) {
	gw, svc, _ := newSubscriptionService(t)

	sub, err := svc.Resume(context.Background(), "sub_1")
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if sub.CancelAtPeriodEnd {
		t.Error("expected cancel_at_period_end cleared")
	}
	if len(gw.setCancelCalls) != 1 || gw.setCancelCalls[0].cancel {
		t.Errorf("expected one clearing call, got %v", gw.setCancelCalls)
	}
}

func TestRefundLatestInvoice(t *testing.T) {
	t.Run("invoice without intent", func(t *testing.T) {
		gw, svc, _ := newSubscriptionService(t)
		gw.subscription = &gateway.Subscription{ID: "sub_1", LatestInvoiceID: "in_1"}
		gw.invoice = &gateway.Invoice{ID: "in_1"} // trial invoice, no intent

		_, err := svc.RefundLatestInvoice(context.Background(), "sub_1")
		if !errors.Is(err, utils.ErrNoPaymentIntentOnInvoice) {
			t.Fatalf("expected ErrNoPaymentIntentOnInvoice, got %v", err)
		}
		if len(gw.refunds) != 0 {
			t.Errorf("expected no refund call, got %d", len(gw.refunds))
		}
	})

	t.Run("full refund of latest invoice", func(t *testing.T) {
		gw, svc, _ := newSubscriptionService(t)
		gw.subscription = &gateway.Subscription{ID: "sub_1", LatestInvoiceID: "in_1"}
		gw.invoice = &gateway.Invoice{ID: "in_1", PaymentIntentID: "pi_9", AmountPaidMinor: 999}

		refund, err := svc.RefundLatestInvoice(context.Background(), "sub_1")
		if err != nil {
			t.Fatalf("RefundLatestInvoice: %v", err)
		}
		if refund.PaymentIntentID != "pi_9" {
			t.Errorf("expected refund against pi_9, got %s", refund.PaymentIntentID)
		}
		if gw.refunds[0].amountMinor != nil {
			t.Error("expected full refund (nil amount)")
		}
	})
}
