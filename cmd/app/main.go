package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fundflow/cmd/fx/account_fx"
	"fundflow/cmd/fx/db_fx"
	"fundflow/cmd/fx/gateway_fx"
	"fundflow/cmd/fx/ledger_fx"
	"fundflow/cmd/fx/logger_fx"
	"fundflow/cmd/fx/onboarding_fx"
	"fundflow/cmd/fx/payment_fx"
	"fundflow/cmd/fx/refund_fx"
	"fundflow/cmd/fx/subscription_fx"
	"fundflow/cmd/fx/transfer_fx"
	"fundflow/internal/api/controllers"
	"fundflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		gateway_fx.Module,
		account_fx.Module,
		ledger_fx.Module,
		onboarding_fx.Module,
		payment_fx.Module,
		transfer_fx.Module,
		refund_fx.Module,
		subscription_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	paymentController *controllers.PaymentController,
	onboardingController *controllers.OnboardingController,
	transferController *controllers.TransferController,
	refundController *controllers.RefundController,
	transactionController *controllers.TransactionController,
	subscriptionController *controllers.SubscriptionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		paymentController,
		onboardingController,
		transferController,
		refundController,
		transactionController,
		subscriptionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	paymentController *controllers.PaymentController,
	onboardingController *controllers.OnboardingController,
	transferController *controllers.TransferController,
	refundController *controllers.RefundController,
	transactionController *controllers.TransactionController,
	subscriptionController *controllers.SubscriptionController) {

	authed := r.Group("/", middleware.JWTAuthMiddleware())

	payments := authed.Group("/payments")
	payments.POST("/intent", paymentController.CreateIntent)
	payments.POST("/verify", paymentController.VerifyPayment)
	payments.POST("/methods", paymentController.AttachPaymentMethod)
	payments.POST("/refund", middleware.RoleMiddleware("admin"), refundController.Refund)

	onboarding := authed.Group("/onboarding")
	onboarding.POST("", onboardingController.BeginOnboarding)
	onboarding.GET("/status", onboardingController.GetStatus)
	onboarding.DELETE("", onboardingController.DeleteOnboarding)

	transfers := authed.Group("/transfers", middleware.RoleMiddleware("admin"))
	transfers.POST("", transferController.Transfer)

	authed.GET("/transactions", transactionController.ListTransactions)

	subscriptions := authed.Group("/subscriptions")
	subscriptions.POST("/plans", middleware.RoleMiddleware("admin"), subscriptionController.CreatePlan)
	subscriptions.GET("/plans", subscriptionController.ListPlans)
	subscriptions.POST("", subscriptionController.CreateSubscription)
	subscriptions.DELETE("/:id", subscriptionController.Cancel)
	subscriptions.POST("/:id/resume", subscriptionController.Resume)
	subscriptions.POST("/:id/refund-latest", subscriptionController.RefundLatestInvoice)
}
