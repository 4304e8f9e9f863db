package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/pricing"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/repository"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/valuation"
)

// PriceSource resolves the current unit price of a market-traded asset.
// Implementations never fail: an unavailable price comes back as a zero or stale quote.
type PriceSource interface {
	CurrentPrice(ctx context.Context, symbol string, assetType model.AssetType) pricing.Quote
}

// DashboardConfig tunes how the dashboard is computed.
type DashboardConfig struct {
	// Location decides which civil date "today" is.
	Location *time.Location
	// DateLayout formats chart labels.
	DateLayout string
	// Concurrency bounds the number of assets enriched at once.
	Concurrency int
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// DashboardService values the household's holdings and builds the dashboard views.
type DashboardService struct {
	assetRepo       *repository.AssetRepository
	transactionRepo *repository.TransactionRepository
	rateRepo        *repository.InterestRateRepository
	prices          PriceSource
	cfg             DashboardConfig
	now             func() time.Time
	log             zerolog.Logger
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(
	assetRepo *repository.AssetRepository,
	transactionRepo *repository.TransactionRepository,
	rateRepo *repository.InterestRateRepository,
	prices PriceSource,
	cfg DashboardConfig,
	log zerolog.Logger,
) *DashboardService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = valuation.DefaultDateLayout
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &DashboardService{
		assetRepo:       assetRepo,
		transactionRepo: transactionRepo,
		rateRepo:        rateRepo,
		prices:          prices,
		cfg:             cfg,
		now:             cfg.Now,
		log:             log,
	}
}

func (s *DashboardService) today() time.Time {
	return valuation.Today(s.now(), s.cfg.Location)
}

// EnrichAsset values a single asset from the ledger.
// transactions may hold the whole ledger; only the asset's own entries are used.
// Savings assets read their rate history from the repository.
//
// Returns apperrors.ErrUnknownAssetType for an asset type no strategy exists for.
func (s *DashboardService) EnrichAsset(ctx context.Context, asset model.Asset, transactions []model.Transaction) (model.AssetWithPrice, error) {
	today := s.today()

	var rates []model.InterestRate
	var currentRate *float64
	if asset.Type == model.AssetTypeSavings {
		var err error
		rates, err = s.rateRepo.GetInterestRateHistory(ctx, asset.ID)
		if err != nil {
			return model.AssetWithPrice{}, err
		}
		currentRate, err = s.rateRepo.GetCurrentRate(ctx, asset.ID, today)
		if err != nil {
			return model.AssetWithPrice{}, err
		}
	}

	return s.enrich(ctx, asset, valuation.FilterByAsset(transactions, asset.ID), rates, currentRate, today)
}

// EnrichAssets values every asset concurrently, at most cfg.Concurrency at a time.
// rates holds the rate histories keyed by asset ID. The result keeps the order of assets.
// The first failure cancels the remaining work and is returned.
func (s *DashboardService) EnrichAssets(
	ctx context.Context,
	assets []model.Asset,
	transactions []model.Transaction,
	rates map[string][]model.InterestRate,
	today time.Time,
) ([]model.AssetWithPrice, error) {
	enriched := make([]model.AssetWithPrice, len(assets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, asset := range assets {
		i, asset := i, asset
		g.Go(func() error {
			history := rates[asset.ID]
			a, err := s.enrich(gctx, asset, valuation.FilterByAsset(transactions, asset.ID),
				history, valuation.RateOn(history, today), today)
			if err != nil {
				return err
			}
			enriched[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

func (s *DashboardService) enrich(
	ctx context.Context,
	asset model.Asset,
	transactions []model.Transaction,
	rates []model.InterestRate,
	currentRate *float64,
	today time.Time,
) (model.AssetWithPrice, error) {
	strategy, err := valuation.StrategyFor(asset.Type)
	if err != nil {
		s.log.Error().Err(err).Str("asset_id", asset.ID).Msg("cannot value asset")
		return model.AssetWithPrice{}, err
	}

	in := valuation.Inputs{
		Asset:        asset,
		Transactions: transactions,
		Today:        today,
	}

	switch strategy.Capability() {
	case valuation.PriceDriven:
		quote := s.prices.CurrentPrice(ctx, asset.Symbol, asset.Type)
		in.Price = quote.Price
		in.Market = valuation.MarketData{
			Change24h:     quote.Change24h,
			DayHigh:       quote.DayHigh,
			DayLow:        quote.DayLow,
			PreviousClose: quote.PreviousClose,
			Volume:        quote.Volume,
		}
	case valuation.InterestDriven:
		in.Rates = rates
		in.CurrentRate = currentRate
	}

	return strategy.Valuate(in), nil
}

// snapshot is one consistent read of the ledger and its valuation.
type snapshot struct {
	today        time.Time
	transactions []model.Transaction
	rates        map[string][]model.InterestRate
	assets       []model.AssetWithPrice
}

func (s *DashboardService) load(ctx context.Context) (snapshot, error) {
	assets, err := s.assetRepo.GetAssets(ctx)
	if err != nil {
		return snapshot{}, err
	}
	transactions, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		return snapshot{}, err
	}
	rates, err := s.rateRepo.GetAllInterestRateHistories(ctx)
	if err != nil {
		return snapshot{}, err
	}

	today := s.today()
	enriched, err := s.EnrichAssets(ctx, assets, transactions, rates, today)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to enrich assets: %w", err)
	}

	return snapshot{
		today:        today,
		transactions: transactions,
		rates:        rates,
		assets:       enriched,
	}, nil
}

func (s *DashboardService) history(snap snapshot) []model.ChartPoint {
	return valuation.BuildTimeSeries(snap.assets, snap.transactions, valuation.SeriesOptions{
		Today:      snap.today,
		DateLayout: s.cfg.DateLayout,
		Rates:      snap.rates,
	})
}

// Load computes everything the dashboard page shows: the enriched assets, the
// portfolio totals, the category breakdown and the full value history.
func (s *DashboardService) Load(ctx context.Context) (*model.Dashboard, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	metrics := valuation.ComputePortfolioMetrics(snap.assets, snap.transactions)
	return &model.Dashboard{
		Metrics:    metrics,
		Categories: valuation.GroupByCategory(snap.assets, snap.transactions, metrics.TotalValue),
		History:    s.history(snap),
		Assets:     snap.assets,
	}, nil
}

// Summary returns the portfolio-wide totals.
func (s *DashboardService) Summary(ctx context.Context) (model.PortfolioMetrics, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return model.PortfolioMetrics{}, err
	}
	return valuation.ComputePortfolioMetrics(snap.assets, snap.transactions), nil
}

// Categories returns the holdings grouped by asset type.
func (s *DashboardService) Categories(ctx context.Context) ([]model.Category, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	metrics := valuation.ComputePortfolioMetrics(snap.assets, snap.transactions)
	return valuation.GroupByCategory(snap.assets, snap.transactions, metrics.TotalValue), nil
}

// History returns the daily value series, cut to the window named by rng
// ("7d", "1m", "3m", "6m", "1y" or "all"; empty means all).
//
// Returns apperrors.ErrInvalidDateRange for an unknown window.
func (s *DashboardService) History(ctx context.Context, rng string) ([]model.ChartPoint, error) {
	if _, err := valuation.FilterRange(nil, rng, time.Time{}); err != nil {
		return nil, err
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return valuation.FilterRange(s.history(snap), rng, snap.today)
}
