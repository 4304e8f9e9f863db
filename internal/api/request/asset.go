package request

// CreateAssetRequest represents the request body for creating an asset.
type CreateAssetRequest struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Isin   string `json:"isin"`
	Type   string `json:"type"`
}

// UpdateAssetRequest represents the request body for renaming an asset.
// The name is the only mutable field.
type UpdateAssetRequest struct {
	Name *string `json:"name"`
}

// CreateInterestRateRequest represents the request body for adding a rate to a savings asset.
type CreateInterestRateRequest struct {
	Rate      *float64 `json:"rate"`
	StartDate string   `json:"startDate"`
}
