package yahoo

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

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client is the subset of FinanceClient used by the price service.
type Client interface {
	QueryQuote(ctx context.Context, symbol string) (Response, error)
	ParseQuote(yahooResult Response) (Quote, error)
}

// FinanceClient provides methods for fetching quotes from the Yahoo Finance chart API.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new Yahoo Finance client.
// An empty baseURL selects DefaultBaseURL; a zero timeout leaves requests unbounded
// except by their context.
func NewFinanceClient(baseURL string, timeout time.Duration) *FinanceClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &FinanceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// ParseQuote extracts the latest quote from a raw chart response.
//
// The change percentage is computed against previousClose, falling back to
// chartPreviousClose, and is left nil when neither is known.
//
// Returns an error when the response holds no result or no regular-market price.
func (c *FinanceClient) ParseQuote(yahooResult Response) (Quote, error) {
	if len(yahooResult.Chart.Result) == 0 {
		return Quote{}, fmt.Errorf("no results returned")
	}
	meta := yahooResult.Chart.Result[0].Meta

	if meta.RegularMarketPrice == nil {
		return Quote{}, fmt.Errorf("no regular market price returned for %s", meta.Symbol)
	}

	q := Quote{
		Symbol:        meta.Symbol,
		Currency:      meta.Currency,
		Price:         *meta.RegularMarketPrice,
		DayHigh:       meta.RegularMarketDayHigh,
		DayLow:        meta.RegularMarketDayLow,
		PreviousClose: meta.PreviousClose,
		Volume:        meta.RegularMarketVolume,
	}
	if q.PreviousClose == nil {
		q.PreviousClose = meta.ChartPreviousClose
	}
	if q.PreviousClose != nil && *q.PreviousClose != 0 {
		change := (q.Price - *q.PreviousClose) / *q.PreviousClose * 100
		q.ChangePercent = &change
	}

	return q, nil
}

// QueryQuote fetches the current day's chart for a symbol, whose meta block
// carries the latest regular-market quote.
//
// Parameters:
//   - ctx: bounds the HTTP request
//   - symbol: Yahoo ticker including any exchange suffix (e.g., "CW8.PA")
//
// Returns:
//   - Response: Raw API response
//   - error: If the HTTP request fails, API returns an error, or no results found
func (c *FinanceClient) QueryQuote(ctx context.Context, symbol string) (Response, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))
	result, err := c.queryYahoo(ctx, u)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return result, nil
}

// queryYahoo executes a request against the Yahoo Finance API and decodes the response.
//
// The method sets required headers:
//   - User-Agent: Mimics a browser to avoid API blocking
//   - Accept: Requests JSON response format
func (c *FinanceClient) queryYahoo(ctx context.Context, u string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return Response{}, fmt.Errorf("yahoo rate limit exceeded")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("failed to decode yahoo response (status %d): %w", resp.StatusCode, err)
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s: %s", response.Chart.Error.Code, response.Chart.Error.Description)
	}

	return response, nil
}
