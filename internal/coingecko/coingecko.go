// Package coingecko fetches crypto prices from the CoinGecko simple price API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public CoinGecko API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// knownIDs maps ticker symbols to CoinGecko coin ids.
var knownIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"SOL":   "solana",
	"ADA":   "cardano",
	"XRP":   "ripple",
	"DOT":   "polkadot",
	"DOGE":  "dogecoin",
	"LTC":   "litecoin",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"BNB":   "binancecoin",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"MATIC": "matic-network",
}

// CoinID returns the CoinGecko id for a ticker symbol.
// Unknown symbols are assumed to already be an id and are lowercased.
func CoinID(symbol string) string {
	s := strings.TrimSpace(symbol)
	if id, ok := knownIDs[strings.ToUpper(s)]; ok {
		return id
	}
	return strings.ToLower(s)
}

// Price is one coin's price in the requested currency.
type Price struct {
	CoinID    string
	Currency  string
	Price     float64
	Change24h *float64
	Volume24h *float64
}

// Client fetches prices from CoinGecko.
type Client struct {
	httpClient *http.Client
	baseURL    string
	currency   string
}

// NewClient creates a CoinGecko client quoting in currency (e.g. "eur").
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, currency string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		currency:   strings.ToLower(currency),
	}
}

// SimplePrice fetches the current price of one coin.
// It fails when the coin is unknown to CoinGecko or has no price in the client's currency.
func (c *Client) SimplePrice(ctx context.Context, coinID string) (Price, error) {
	q := url.Values{}
	q.Set("ids", coinID)
	q.Set("vs_currencies", c.currency)
	q.Set("include_24hr_change", "true")
	q.Set("include_24hr_vol", "true")
	u := c.baseURL + "/simple/price?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Price{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Price{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return Price{}, fmt.Errorf("coingecko rate limit exceeded")
	}
	if resp.StatusCode != http.StatusOK {
		return Price{}, fmt.Errorf("coingecko API error: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Price{}, err
	}

	var body map[string]map[string]float64
	if err := json.Unmarshal(data, &body); err != nil {
		return Price{}, fmt.Errorf("failed to decode coingecko response: %w", err)
	}

	fields, ok := body[coinID]
	if !ok {
		return Price{}, fmt.Errorf("coingecko returned no data for %s", coinID)
	}
	price, ok := fields[c.currency]
	if !ok {
		return Price{}, fmt.Errorf("coingecko returned no %s price for %s", c.currency, coinID)
	}

	p := Price{CoinID: coinID, Currency: c.currency, Price: price}
	if v, ok := fields[c.currency+"_24h_change"]; ok {
		p.Change24h = &v
	}
	if v, ok := fields[c.currency+"_24h_vol"]; ok {
		p.Volume24h = &v
	}
	return p, nil
}
