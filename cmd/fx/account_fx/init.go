package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"elimu/internal/api/controllers"
	"elimu/internal/repositories"
	"elimu/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, subRepo repositories.SubscriptionRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, subRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
