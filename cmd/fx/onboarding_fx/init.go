package onboarding_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fundflow/internal/api/controllers"
	"fundflow/internal/gateway"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
)

var Module = fx.Provide(
	provideOnboardingService, provideOnboardingController)

func provideOnboardingService(accountRepo repositories.AccountRepository, gw gateway.PaymentGateway, logger *zap.Logger) services.OnboardingServiceInterface {
	return services.NewOnboardingService(accountRepo, gw, logger)
}

func provideOnboardingController(onboardingService services.OnboardingServiceInterface) *controllers.OnboardingController {
	return controllers.NewOnboardingController(onboardingService)
}
