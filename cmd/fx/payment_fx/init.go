package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"elimu/internal/api/controllers"
	"elimu/internal/gateway"
	"elimu/internal/repositories"
	"elimu/internal/services"
	"elimu/pkg/memcache"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideGateway, provideCheckoutLocks,
	provideCheckoutService, provideWebhookService, provideSubscriptionService,
	providePaymentController)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideGateway() *gateway.Client {
	// Missing credentials switch the client into its logged no-op mode
	// rather than failing startup.
	return gateway.NewClient(gateway.Config{
		SecretKey:     os.Getenv("LENCO_SECRET_KEY"),
		WebhookSecret: os.Getenv("LENCO_WEBHOOK_SECRET"),
		Currency:      "ZMW",
		Operator:      "airtel",
		ProviderName:  "lenco",
	})
}

func provideCheckoutLocks() memcache.CheckoutLockStore {
	return memcache.NewCheckoutLocks()
}

func provideCheckoutService(
	planRepo repositories.IPlanRepository,
	accountRepo repositories.AccountRepository,
	subRepo repositories.SubscriptionRepository,
	gw *gateway.Client,
	locks memcache.CheckoutLockStore,
) services.CheckoutService {
	return services.NewCheckoutService(planRepo, accountRepo, subRepo, gw, locks)
}

func provideWebhookService(
	subRepo repositories.SubscriptionRepository,
	gw *gateway.Client,
	mail services.IMailService,
) services.WebhookService {
	return services.NewWebhookService(subRepo, gw, mail)
}

func provideSubscriptionService(subRepo repositories.SubscriptionRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo)
}

func providePaymentController(
	checkoutService services.CheckoutService,
	webhookService services.WebhookService,
	subscriptionService services.SubscriptionServiceInterface,
) *controllers.PaymentController {
	return controllers.NewPaymentController(checkoutService, webhookService, subscriptionService)
}
