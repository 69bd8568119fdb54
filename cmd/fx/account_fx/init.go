package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fundflow/internal/repositories"
)

var Module = fx.Provide(
	provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}
