package gateway_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fundflow/internal/gateway"
)

var Module = fx.Provide(
	provideGateway)

func provideGateway(logger *zap.Logger) gateway.PaymentGateway {
	cfg := gateway.StripeConfig{
		SecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		RefreshURL: os.Getenv("ONBOARDING_REFRESH_URL"),
		ReturnURL:  os.Getenv("ONBOARDING_RETURN_URL"),
	}

	return gateway.NewStripeGateway(cfg, logger)
}
