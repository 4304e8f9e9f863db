package request

// CreateTransactionRequest represents the request body for recording a buy or sell.
// Any two of quantity, pricePerUnit and totalAmount suffice; the third is derived.
type CreateTransactionRequest struct {
	AssetID         string   `json:"assetId"`
	Type            string   `json:"type"`
	Quantity        *float64 `json:"quantity,omitempty"`
	PricePerUnit    *float64 `json:"pricePerUnit,omitempty"`
	TotalAmount     *float64 `json:"totalAmount,omitempty"`
	TransactionDate string   `json:"transactionDate"`
}
