package payment_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fundflow/internal/api/controllers"
	"fundflow/internal/gateway"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePaymentController)

func providePaymentService(
	accountRepo repositories.AccountRepository,
	ledger repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	logger *zap.Logger) services.PaymentServiceInterface {

	return services.NewPaymentService(accountRepo, ledger, gw, logger)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
