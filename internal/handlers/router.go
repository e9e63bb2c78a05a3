package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mysteryidea/ledgerd/internal/middleware"
	"github.com/mysteryidea/ledgerd/internal/service"
)

type Handler struct {
	userService       service.UserService
	walletService     service.WalletService
	purchaseService   service.PurchaseService
	settlementService service.SettlementService

	stripeWebhookSecret   string
	identityWebhookSecret string

	validate *validator.Validate
}

func NewHandler(
	userService service.UserService,
	walletService service.WalletService,
	purchaseService service.PurchaseService,
	settlementService service.SettlementService,
	stripeWebhookSecret string,
	identityWebhookSecret string,
) *Handler {
	return &Handler{
		userService:           userService,
		walletService:         walletService,
		purchaseService:       purchaseService,
		settlementService:     settlementService,
		stripeWebhookSecret:   stripeWebhookSecret,
		identityWebhookSecret: identityWebhookSecret,
		validate:              validator.New(),
	}
}

func NewRouter(handler *Handler, secretKey string, depositLimiter *middleware.UserLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))

			r.Get("/wallet", handler.GetWallet)
			r.Get("/wallet/activity", handler.GetWalletActivity)
			r.Post("/wallet/withdrawals", handler.RequestWithdrawal)
			r.With(middleware.RateLimitMiddleware(depositLimiter)).
				Post("/wallet/deposits", handler.CreateDepositSession)

			r.Post("/payout/connect", handler.ConnectPayoutAccount)

			r.Post("/purchases/checkout", handler.CreateCheckoutSession)
			r.Post("/purchases/wallet", handler.PurchaseWithWallet)
			r.Get("/purchases", handler.ListPurchases)
			r.Get("/purchases/{ideaID}/verify", handler.VerifyPurchase)
		})

		r.Post("/webhooks/stripe", handler.StripeWebhook)
		r.Post("/webhooks/identity", handler.IdentityWebhook)
	})

	return r
}
