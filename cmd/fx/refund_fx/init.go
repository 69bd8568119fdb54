package refund_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fundflow/internal/api/controllers"
	"fundflow/internal/gateway"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
)

var Module = fx.Provide(
	provideRefundService, provideRefundController)

func provideRefundService(gw gateway.PaymentGateway, logger *zap.Logger) services.RefundServiceInterface {
	return services.NewRefundService(gw, logger)
}

func provideRefundController(refundService services.RefundServiceInterface, ledger repositories.TransactionRepository) *controllers.RefundController {
	return controllers.NewRefundController(refundService, ledger)
}
