package testutil

import (
	"context"
	"sync"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/pricing"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/yahoo"
)

// MockPriceSource is a service.PriceSource returning fixed prices per symbol.
// Unknown symbols are priced at 0 and flagged stale, the way the real price
// service reports an unavailable price.
type MockPriceSource struct {
	mu     sync.Mutex
	prices map[string]float64
	calls  map[string]int
}

// NewMockPriceSource creates a price source with no prices.
func NewMockPriceSource() *MockPriceSource {
	return &MockPriceSource{
		prices: make(map[string]float64),
		calls:  make(map[string]int),
	}
}

// WithPrice sets the price returned for symbol.
func (m *MockPriceSource) WithPrice(symbol string, price float64) *MockPriceSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[symbol] = price
	return m
}

// CurrentPrice implements service.PriceSource.
func (m *MockPriceSource) CurrentPrice(_ context.Context, symbol string, _ model.AssetType) pricing.Quote {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[symbol]++
	price, ok := m.prices[symbol]
	return pricing.Quote{Price: price, Stale: !ok}
}

// Calls returns how many times symbol was priced.
func (m *MockPriceSource) Calls(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[symbol]
}

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// It returns a quote built from a configured price instead of making API calls.
type MockYahooClient struct {
	mu sync.Mutex
	// Prices maps a Yahoo symbol to its regular-market price.
	Prices map[string]float64
	// MockError is the error to return from QueryQuote
	MockError error
	// QueryCount tracks how many times QueryQuote was called
	QueryCount int
}

// NewMockYahooClient creates a new mock Yahoo client with no prices.
func NewMockYahooClient() *MockYahooClient {
	return &MockYahooClient{Prices: make(map[string]float64)}
}

// WithPrice sets the price quoted for symbol.
func (m *MockYahooClient) WithPrice(symbol string, price float64) *MockYahooClient {
	m.Prices[symbol] = price
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockYahooClient) WithError(err error) *MockYahooClient {
	m.MockError = err
	return m
}

// QueryQuote returns a response carrying the configured price for symbol.
// A symbol without a price yields Yahoo's "Not Found" chart error.
func (m *MockYahooClient) QueryQuote(_ context.Context, symbol string) (yahoo.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return CreateMockYahooResponse(symbol, m.Prices[symbol]), nil
}

// ParseQuote delegates to the real parser since it's pure logic with no side effects.
func (m *MockYahooClient) ParseQuote(yahooResult yahoo.Response) (yahoo.Quote, error) {
	return yahoo.NewFinanceClient("", 0).ParseQuote(yahooResult)
}

// CreateMockYahooResponse builds a chart response quoting symbol at price.
// A zero price yields a "Not Found" chart error instead.
func CreateMockYahooResponse(symbol string, price float64) yahoo.Response {
	if price == 0 {
		return yahoo.Response{Chart: yahoo.Chart{Error: &yahoo.Error{
			Code:        "Not Found",
			Description: "No data found, symbol may be delisted",
		}}}
	}

	high, low, prev := price*1.01, price*0.99, price*0.98
	volume := int64(1000)
	return yahoo.Response{Chart: yahoo.Chart{Result: []yahoo.Result{{Meta: yahoo.Meta{
		Currency:             "EUR",
		Symbol:               symbol,
		RegularMarketPrice:   &price,
		RegularMarketDayHigh: &high,
		RegularMarketDayLow:  &low,
		RegularMarketVolume:  &volume,
		ChartPreviousClose:   &prev,
	}}}}}
}
