package pricing

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// Service resolves current prices for assets, routing each asset type to its provider.
type Service struct {
	providers map[model.AssetType]Provider
	cache     *Cache
	limiter   *Limiter
	metrics   *Metrics
	log       zerolog.Logger
	now       func() time.Time
}

// NewService creates a price service. providers maps each price-driven asset type
// to the provider quoting it; types without a provider are priced at 0.
func NewService(
	providers map[model.AssetType]Provider,
	cache *Cache,
	limiter *Limiter,
	metrics *Metrics,
	log zerolog.Logger,
) *Service {
	return &Service{
		providers: providers,
		cache:     cache,
		limiter:   limiter,
		metrics:   metrics,
		log:       log.With().Str("component", "pricing").Logger(),
		now:       time.Now,
	}
}

// CurrentPrice returns the latest known quote for an asset symbol. It never fails:
//
//   - a fresh cached quote is returned as is
//   - when the provider's rate limit is exhausted, the stale cached quote is
//     returned, or a zero quote if there is none
//   - when the fetch fails, the same fallback applies and the failure is logged
//   - a successful fetch replaces the cached quote
func (s *Service) CurrentPrice(ctx context.Context, symbol string, assetType model.AssetType) Quote {
	provider, ok := s.providers[assetType]
	if !ok {
		return Quote{}
	}

	name := provider.Name()
	providerSymbol := provider.Symbol(symbol)
	key := name + ":" + providerSymbol

	cached, fresh, found := s.cache.Get(key)
	if found && fresh {
		s.metrics.observeLookup(name, outcomeCacheHit)
		return cached
	}

	if !s.limiter.Allow(name) {
		s.metrics.observeLookup(name, outcomeRateLimited)
		s.log.Warn().
			Str("provider", name).
			Str("symbol", providerSymbol).
			Bool("cached", found).
			Msg("Price rate limit reached, serving cached price")
		return fallback(cached, found)
	}

	start := s.now()
	q, err := provider.Fetch(ctx, providerSymbol)
	s.metrics.observeFetch(name, s.now().Sub(start).Seconds())
	if err != nil {
		s.metrics.observeLookup(name, outcomeError)
		s.log.Warn().
			Err(err).
			Str("provider", name).
			Str("symbol", providerSymbol).
			Bool("cached", found).
			Msg("Price fetch failed, serving cached price")
		return fallback(cached, found)
	}

	s.metrics.observeLookup(name, outcomeFetched)
	q.FetchedAt = s.cache.now()
	s.cache.Set(key, q)
	return q
}

func fallback(cached Quote, found bool) Quote {
	if !found {
		return Quote{Stale: true}
	}
	cached.Stale = true
	return cached
}
