package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/auth"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/coingecko"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/config"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/database"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/logging"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/pricing"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/repository"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/scheduler"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet.
		bootLog := logging.New(logging.Config{Pretty: true})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
	log.Info().Msg("Server exited")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Open database connection
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().Str("path", cfg.Database.Path).Msg("Connected to database")

	// Create repositories
	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	rateRepo := repository.NewInterestRateRepository(db)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Price lookups
	yahooClient := yahoo.NewFinanceClient(cfg.Pricing.YahooBaseURL, cfg.Pricing.RequestTimeout)
	geckoClient := coingecko.NewClient(cfg.Pricing.CoinGeckoBaseURL, cfg.Pricing.Currency, cfg.Pricing.RequestTimeout)
	prices := pricing.NewService(
		map[model.AssetType]pricing.Provider{
			model.AssetTypeETF:    pricing.NewYahooProvider(yahooClient, cfg.Pricing.DefaultExchangeSuffix),
			model.AssetTypeCrypto: pricing.NewCoinGeckoProvider(geckoClient),
		},
		pricing.NewCache(cfg.Pricing.CacheTTL),
		pricing.NewLimiter(cfg.Pricing.MaxCallsPerMinute),
		pricing.NewMetrics(registry),
		log,
	)

	authenticator, err := auth.New(auth.Config{
		Password:   cfg.Auth.Password,
		SessionKey: cfg.Auth.SessionKey,
		TTL:        cfg.Auth.SessionTTL,
		Secure:     cfg.Auth.CookieSecure,
	})
	if err != nil {
		return err
	}
	if !authenticator.Configured() {
		log.Warn().Msg("DASHBOARD_PASSWORD is not set, logins will be refused")
	}
	if cfg.Auth.SessionKey == "" {
		log.Warn().Msg("SESSION_KEY is not set, sessions will not survive a restart")
	}

	// Create services
	services := api.Services{
		System: service.NewSystemService(db, map[string]bool{
			"auth":          authenticator.Configured(),
			"price_refresh": cfg.Pricing.RefreshSchedule != "",
		}),
		Asset:       service.NewAssetService(db, assetRepo, rateRepo),
		Transaction: service.NewTransactionService(transactionRepo, assetRepo),
		Dashboard: service.NewDashboardService(
			assetRepo,
			transactionRepo,
			rateRepo,
			prices,
			service.DashboardConfig{
				Location:    cfg.Dashboard.Location,
				DateLayout:  cfg.Dashboard.ChartDateFormat,
				Concurrency: cfg.Dashboard.EnrichConcurrency,
			},
			log,
		),
	}

	// Background jobs
	sched := scheduler.New(ctx, log)
	if cfg.Pricing.RefreshSchedule != "" {
		job := service.NewPriceRefreshJob(assetRepo, prices, log)
		if err := sched.AddJob(cfg.Pricing.RefreshSchedule, job); err != nil {
			return err
		}
		// Warm the price cache so the first dashboard load does not wait on providers.
		go func() {
			if err := sched.RunNow(job); err != nil {
				log.Warn().Err(err).Msg("Initial price refresh failed")
			}
		}()
	}
	sched.Start()
	defer sched.Stop()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(services, authenticator, registry, cfg, logging.Component(log, "http")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
