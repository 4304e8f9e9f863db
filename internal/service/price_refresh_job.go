package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/repository"
)

// PriceRefreshJob keeps the price cache warm for every market-traded asset, so
// dashboard requests are served from cache instead of waiting on the providers.
type PriceRefreshJob struct {
	assetRepo *repository.AssetRepository
	prices    PriceSource
	log       zerolog.Logger
}

// NewPriceRefreshJob creates the job.
func NewPriceRefreshJob(assetRepo *repository.AssetRepository, prices PriceSource, log zerolog.Logger) *PriceRefreshJob {
	return &PriceRefreshJob{
		assetRepo: assetRepo,
		prices:    prices,
		log:       log,
	}
}

// Name implements scheduler.Job.
func (j *PriceRefreshJob) Name() string { return "price_refresh" }

// Run looks up the price of each non-savings asset once.
func (j *PriceRefreshJob) Run(ctx context.Context) error {
	assets, err := j.assetRepo.GetAssets(ctx)
	if err != nil {
		return err
	}

	refreshed := 0
	for _, a := range assets {
		if a.Type == model.AssetTypeSavings {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		q := j.prices.CurrentPrice(ctx, a.Symbol, a.Type)
		if q.Stale {
			j.log.Warn().Str("symbol", a.Symbol).Msg("price refresh served a stale quote")
			continue
		}
		refreshed++
	}

	j.log.Debug().Int("refreshed", refreshed).Int("assets", len(assets)).Msg("price refresh complete")
	return nil
}
