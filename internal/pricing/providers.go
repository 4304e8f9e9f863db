package pricing

import (
	"context"
	"math"
	"strings"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/coingecko"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/yahoo"
)

// YahooProvider quotes exchange-listed funds and stocks.
type YahooProvider struct {
	client yahoo.Client
	suffix string
}

// NewYahooProvider wraps a Yahoo client. Symbols without an exchange suffix get
// defaultSuffix appended (e.g. ".PA" for Euronext Paris).
func NewYahooProvider(client yahoo.Client, defaultSuffix string) *YahooProvider {
	return &YahooProvider{client: client, suffix: defaultSuffix}
}

// Name implements Provider.
func (p *YahooProvider) Name() string { return "yahoo" }

// Symbol implements Provider.
func (p *YahooProvider) Symbol(assetSymbol string) string {
	s := strings.ToUpper(strings.TrimSpace(assetSymbol))
	if p.suffix == "" || strings.Contains(s, ".") {
		return s
	}
	return s + p.suffix
}

// Fetch implements Provider.
func (p *YahooProvider) Fetch(ctx context.Context, symbol string) (Quote, error) {
	raw, err := p.client.QueryQuote(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	yq, err := p.client.ParseQuote(raw)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Price:         yq.Price,
		Change24h:     yq.ChangePercent,
		DayHigh:       yq.DayHigh,
		DayLow:        yq.DayLow,
		PreviousClose: yq.PreviousClose,
		Volume:        yq.Volume,
	}, nil
}

// CoinGeckoClient is the subset of coingecko.Client used by CoinGeckoProvider.
type CoinGeckoClient interface {
	SimplePrice(ctx context.Context, coinID string) (coingecko.Price, error)
}

// CoinGeckoProvider quotes crypto assets.
type CoinGeckoProvider struct {
	client CoinGeckoClient
}

// NewCoinGeckoProvider wraps a CoinGecko client.
func NewCoinGeckoProvider(client CoinGeckoClient) *CoinGeckoProvider {
	return &CoinGeckoProvider{client: client}
}

// Name implements Provider.
func (p *CoinGeckoProvider) Name() string { return "coingecko" }

// Symbol implements Provider.
func (p *CoinGeckoProvider) Symbol(assetSymbol string) string {
	return coingecko.CoinID(assetSymbol)
}

// Fetch implements Provider.
func (p *CoinGeckoProvider) Fetch(ctx context.Context, symbol string) (Quote, error) {
	cp, err := p.client.SimplePrice(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	q := Quote{
		Price:     cp.Price,
		Change24h: cp.Change24h,
	}
	if cp.Volume24h != nil {
		v := int64(math.Round(*cp.Volume24h))
		q.Volume = &v
	}
	return q, nil
}
