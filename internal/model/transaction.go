package model

import "time"

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// Transaction represents a buy or sell of an asset.
// The ledger is append-only. TotalAmount is stored as entered and is what the
// cost basis is computed from; it is checked against Quantity*PricePerUnit on insert.
type Transaction struct {
	ID              string          `json:"id"`
	AssetID         string          `json:"assetId"`
	Type            TransactionType `json:"type"`
	Quantity        float64         `json:"quantity"`
	PricePerUnit    float64         `json:"pricePerUnit"`
	TotalAmount     float64         `json:"totalAmount"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TransactionResponse represents a transaction enriched with asset details for API responses.
type TransactionResponse struct {
	Transaction
	AssetName   string    `json:"assetName"`
	AssetSymbol string    `json:"assetSymbol"`
	AssetType   AssetType `json:"assetType"`
}
