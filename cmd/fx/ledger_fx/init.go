package ledger_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fundflow/internal/api/controllers"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideTransactionService, provideTransactionController)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionService(ledger repositories.TransactionRepository) services.TransactionServiceInterface {
	return services.NewTransactionService(ledger)
}

func provideTransactionController(transactionService services.TransactionServiceInterface) *controllers.TransactionController {
	return controllers.NewTransactionController(transactionService)
}
