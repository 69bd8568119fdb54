package transfer_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fundflow/internal/api/controllers"
	"fundflow/internal/gateway"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
)

var Module = fx.Provide(
	provideTransferService, provideTransferController)

func provideTransferService(
	accountRepo repositories.AccountRepository,
	ledger repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	logger *zap.Logger) services.TransferServiceInterface {

	return services.NewTransferService(accountRepo, ledger, gw, logger)
}

func provideTransferController(transferService services.TransferServiceInterface) *controllers.TransferController {
	return controllers.NewTransferController(transferService)
}
