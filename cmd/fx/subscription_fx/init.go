package subscription_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fundflow/internal/api/controllers"
	"fundflow/internal/gateway"
	"fundflow/internal/repositories"
	"fundflow/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, provideSubscriptionService, provideSubscriptionController)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionService(planRepo repositories.IPlanRepository, gw gateway.PaymentGateway, logger *zap.Logger) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(planRepo, gw, logger)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
