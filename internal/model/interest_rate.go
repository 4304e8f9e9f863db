package model

import "time"

// InterestRate is one interval of a savings asset's rate history.
// StartDate is inclusive, EndDate is exclusive; a nil EndDate means the rate is still in effect.
// Intervals of one asset are expected to be contiguous and non-overlapping.
type InterestRate struct {
	ID        string     `json:"id"`
	AssetID   string     `json:"assetId"`
	Rate      float64    `json:"rate"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
