package model

import "time"

// AssetType is the closed set of holdings the dashboard knows how to value.
type AssetType string

const (
	AssetTypeETF     AssetType = "etf"
	AssetTypeCrypto  AssetType = "crypto"
	AssetTypeSavings AssetType = "savings"
)

// AssetTypes lists the known asset types in display order.
var AssetTypes = []AssetType{AssetTypeETF, AssetTypeCrypto, AssetTypeSavings}

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeETF, AssetTypeCrypto, AssetTypeSavings:
		return true
	}
	return false
}

// Asset represents a tracked holding from the database.
// Only the name can change after creation; assets are never deleted.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Isin      string    `json:"isin,omitempty"`
	Type      AssetType `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssetWithPrice is an Asset enriched with its current price and the metrics
// derived from its transaction history. It is computed per request and never stored.
type AssetWithPrice struct {
	Asset

	CurrentPrice         float64 `json:"currentPrice"`
	TotalQuantity        float64 `json:"totalQuantity"`
	TotalValue           float64 `json:"totalValue"`
	TotalCost            float64 `json:"totalCost"`
	AveragePrice         float64 `json:"averagePrice"`
	ProfitLoss           float64 `json:"profitLoss"`
	ProfitLossPercentage float64 `json:"profitLossPercentage"`

	// Market data, only present for price-driven assets when the provider returned it.
	Change24h     *float64 `json:"change24h,omitempty"`
	DayHigh       *float64 `json:"dayHigh,omitempty"`
	DayLow        *float64 `json:"dayLow,omitempty"`
	PreviousClose *float64 `json:"previousClose,omitempty"`
	Volume        *int64   `json:"volume,omitempty"`

	// Savings only.
	AccruedInterest *float64 `json:"accruedInterest,omitempty"`
	InterestRate    *float64 `json:"interestRate,omitempty"`
}
