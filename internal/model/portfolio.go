package model

// PortfolioMetrics holds the portfolio-wide totals shown on the dashboard.
type PortfolioMetrics struct {
	TotalValue                float64 `json:"totalValue"`
	TotalInvested             float64 `json:"totalInvested"`
	TotalProfitLoss           float64 `json:"totalProfitLoss"`
	TotalProfitLossPercentage float64 `json:"totalProfitLossPercentage"`
}

// Category groups the enriched assets of one asset type with their subtotals.
// Archived items (zero quantity) are listed apart but still count towards the totals.
type Category struct {
	Type          AssetType      `json:"type"`
	Name          string         `json:"category"`
	Total         float64        `json:"total"`
	Invested      float64        `json:"invested"`
	Percentage    float64        `json:"percentage"`
	Items         []CategoryItem `json:"items"`
	ArchivedItems []CategoryItem `json:"archivedItems"`
}

// CategoryItem is the display row of one asset inside a Category.
type CategoryItem struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Symbol               string   `json:"symbol"`
	Value                float64  `json:"value"`
	Quantity             float64  `json:"quantity"`
	CurrentPrice         float64  `json:"currentPrice"`
	AveragePrice         float64  `json:"averagePrice"`
	Percentage           float64  `json:"percentage"`
	ProfitLoss           float64  `json:"profitLoss"`
	ProfitLossPercentage float64  `json:"profitLossPercentage"`
	InterestRate         *float64 `json:"interestRate,omitempty"`
	AccruedInterest      *float64 `json:"accruedInterest,omitempty"`
}

// Dashboard is everything the dashboard page renders in one response.
type Dashboard struct {
	Metrics    PortfolioMetrics `json:"metrics"`
	Categories []Category       `json:"categories"`
	History    []ChartPoint     `json:"history"`
	Assets     []AssetWithPrice `json:"assets"`
}
