package handlers

import (
	"net/http"

	"minvest/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())
	r.Use(middleware.WithHash(secretKey))

	limiter := middleware.NewUserRateLimiter(rate.Limit(10), 20)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.Register)
			r.Post("/login", handler.Login)
		})

		r.Get("/servers", handler.ListServers)
		r.Get("/contracts", handler.ListContracts)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", handler.Subscribe)
				r.Get("/", handler.ListSubscriptions)
				r.Get("/{id}", handler.GetSubscription)
				r.Post("/{id}/deposits", handler.RecordDeposit)
				r.Post("/{id}/cancel", handler.CancelSubscription)
			})

			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", handler.RequestWithdrawal)
				r.Get("/", handler.ListWithdrawals)
				r.Post("/{id}/cancel", handler.CancelWithdrawal)
			})

			r.Route("/banks", func(r chi.Router) {
				r.Post("/", handler.CreateBank)
				r.Get("/", handler.ListBanks)
			})

			r.Route("/kyc", func(r chi.Router) {
				r.Post("/", handler.SubmitKYC)
				r.Get("/", handler.GetKYC)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RequireAdmin())

			r.Patch("/withdrawals/admin/{id}/status", handler.SetWithdrawalStatus)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/servers", handler.CreateServer)
				r.Patch("/servers/{id}", handler.UpdateServer)
				r.Post("/contracts", handler.CreateContract)
				r.Patch("/contracts/{id}", handler.UpdateContract)

				r.Post("/subscriptions/{id}/balance", handler.MutateBalance)
				r.Post("/subscriptions/{id}/accrue", handler.Accrue)

				r.Get("/withdrawals", handler.ListAllWithdrawals)

				r.Patch("/banks/{id}", handler.SetBankActive)
				r.Get("/wallets", handler.ListWallets)
				r.Post("/wallets", handler.CreateWallet)
				r.Patch("/wallets/{id}", handler.SetWalletActive)

				r.Patch("/kyc/{id}", handler.ReviewKYC)
			})
		})
	})

	return r
}
