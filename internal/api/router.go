package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Household-Wealth-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/auth"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/config"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
)

// Services bundles the services the router exposes.
type Services struct {
	System      *service.SystemService
	Asset       *service.AssetService
	Transaction *service.TransactionService
	Dashboard   *service.DashboardService
}

// NewRouter creates and configures the HTTP router.
// Metrics registered on gatherer are served at /metrics.
func NewRouter(
	svc Services,
	authenticator *auth.Authenticator,
	gatherer prometheus.Gatherer,
	cfg *config.Config,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	loc := cfg.Dashboard.Location
	if loc == nil {
		loc = time.UTC
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(authenticator, log)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/status", authHandler.Status)
		})

		// Everything below requires a session.
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireSession(authenticator))

			r.Route("/asset", func(r chi.Router) {
				assetHandler := handlers.NewAssetHandler(svc.Asset)
				r.Get("/", assetHandler.Assets)
				r.Post("/", assetHandler.CreateAsset)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", assetHandler.GetAsset)
					r.Put("/", assetHandler.UpdateAsset)
					r.Get("/interest-rate", assetHandler.InterestRates)
					r.Post("/interest-rate", assetHandler.CreateInterestRate)
				})
			})

			r.Route("/transaction", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(svc.Transaction, loc)
				r.Get("/", transactionHandler.Transactions)
				r.Post("/", transactionHandler.CreateTransaction)

				r.With(custommiddleware.ValidateUUIDMiddleware).Get("/{uuid}", transactionHandler.GetTransaction)
			})

			r.Route("/dashboard", func(r chi.Router) {
				dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
				r.Get("/", dashboardHandler.Dashboard)
				r.Get("/summary", dashboardHandler.Summary)
				r.Get("/categories", dashboardHandler.Categories)
				r.Get("/history", dashboardHandler.History)
			})
		})
	})

	return r
}
