// Package pricing resolves the current unit price of market-traded assets.
//
// Lookups go through a per-symbol TTL cache and a per-provider rate limiter.
// Failures never reach the caller: a stale cached quote is served instead, or a
// zero quote when nothing was ever fetched.
package pricing

import (
	"context"
	"time"
)

// Quote is a provider's latest price for one symbol plus whatever market
// details it returned.
type Quote struct {
	Price         float64
	Change24h     *float64
	DayHigh       *float64
	DayLow        *float64
	PreviousClose *float64
	Volume        *int64
	FetchedAt     time.Time
	// Stale is set when the quote was served from cache after a failed or
	// rate-limited refresh.
	Stale bool
}

// Provider fetches quotes from one upstream API.
type Provider interface {
	// Name identifies the provider in cache keys, rate limits and metrics.
	Name() string
	// Symbol maps the symbol stored on an asset to the provider's own identifier.
	Symbol(assetSymbol string) string
	// Fetch retrieves the latest quote for a provider identifier.
	Fetch(ctx context.Context, symbol string) (Quote, error)
}
