package valuation

import (
	"math"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// zeroQuantity is the tolerance under which a position counts as closed.
// Selling a position in several fractional lots rarely lands on exactly 0.
const zeroQuantity = 1e-9

// categoryNames are the display names of the dashboard sections.
var categoryNames = map[model.AssetType]string{
	model.AssetTypeETF:     "Stocks & Funds",
	model.AssetTypeCrypto:  "Crypto",
	model.AssetTypeSavings: "Savings",
}

// ComputePortfolioMetrics totals the enriched assets into portfolio-wide figures.
//
// TotalInvested is recomputed from each asset's own transactions in the ledger
// rather than read from the enriched TotalCost; both come from ComputePosition and
// agree by construction. TotalProfitLossPercentage is 0 when nothing is invested.
func ComputePortfolioMetrics(assets []model.AssetWithPrice, transactions []model.Transaction) model.PortfolioMetrics {
	var m model.PortfolioMetrics
	for _, a := range assets {
		m.TotalValue += a.TotalValue
		m.TotalInvested += NetInvested(transactions, a.ID)
	}
	m.TotalProfitLoss = m.TotalValue - m.TotalInvested
	m.TotalProfitLossPercentage = percentOf(m.TotalProfitLoss, m.TotalInvested)
	return m
}

// GroupByCategory splits the enriched assets into one Category per asset type,
// always in etf, crypto, savings order and always all three.
//
// Percentages are shares of totalValue and fall back to 0 when totalValue is 0.
// Closed positions are listed as archived items but still count in the category
// totals.
func GroupByCategory(assets []model.AssetWithPrice, transactions []model.Transaction, totalValue float64) []model.Category {
	categories := make([]model.Category, 0, len(model.AssetTypes))
	for _, t := range model.AssetTypes {
		c := model.Category{
			Type:          t,
			Name:          categoryNames[t],
			Items:         []model.CategoryItem{},
			ArchivedItems: []model.CategoryItem{},
		}

		for _, a := range assets {
			if a.Type != t {
				continue
			}
			c.Total += a.TotalValue
			c.Invested += NetInvested(transactions, a.ID)

			// Oversold positions count towards the totals but are listed in neither group.
			item := toCategoryItem(a, totalValue)
			switch {
			case math.Abs(a.TotalQuantity) < zeroQuantity:
				c.ArchivedItems = append(c.ArchivedItems, item)
			case a.TotalQuantity > 0:
				c.Items = append(c.Items, item)
			}
		}

		c.Percentage = percentOf(c.Total, totalValue)
		categories = append(categories, c)
	}
	return categories
}

func toCategoryItem(a model.AssetWithPrice, totalValue float64) model.CategoryItem {
	item := model.CategoryItem{
		ID:                   a.ID,
		Name:                 a.Name,
		Symbol:               a.Symbol,
		Value:                a.TotalValue,
		Quantity:             a.TotalQuantity,
		CurrentPrice:         a.CurrentPrice,
		AveragePrice:         a.AveragePrice,
		Percentage:           percentOf(a.TotalValue, totalValue),
		ProfitLoss:           a.ProfitLoss,
		ProfitLossPercentage: a.ProfitLossPercentage,
	}
	if a.Type == model.AssetTypeSavings {
		item.InterestRate = a.InterestRate
		item.AccruedInterest = a.AccruedInterest
	}
	return item
}

// percentOf is part/whole*100, or 0 when the result is not a finite number.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	p := part / whole * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
