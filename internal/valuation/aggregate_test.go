package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

func enrichAll(t *testing.T, assets []model.Asset, txs []model.Transaction, prices map[string]float64, rates map[string][]model.InterestRate, today int) []model.AssetWithPrice {
	t.Helper()
	out := make([]model.AssetWithPrice, 0, len(assets))
	for _, a := range assets {
		enriched, err := Enrich(Inputs{
			Asset:        a,
			Transactions: FilterByAsset(txs, a.ID),
			Price:        prices[a.ID],
			Rates:        rates[a.ID],
			Today:        onDay(today),
		})
		require.NoError(t, err)
		out = append(out, enriched)
	}
	return out
}

func TestComputePortfolioMetrics_ZeroPortfolio(t *testing.T) {
	m := ComputePortfolioMetrics(nil, nil)

	assert.Equal(t, model.PortfolioMetrics{}, m)
	assert.False(t, math.IsNaN(m.TotalProfitLossPercentage))
}

func TestComputePortfolioMetrics_AssetsWithoutTransactions(t *testing.T) {
	assets := enrichAll(t, []model.Asset{
		{ID: "a", Name: "ETF", Type: model.AssetTypeETF},
		{ID: "s", Name: "Savings", Type: model.AssetTypeSavings},
	}, nil, map[string]float64{"a": 100}, nil, 10)

	m := ComputePortfolioMetrics(assets, nil)

	assert.Equal(t, model.PortfolioMetrics{}, m)
}

func TestComputePortfolioMetrics_Totals(t *testing.T) {
	txs := []model.Transaction{
		buy("a", 10, 90, 1),
		sell("a", 4, 100, 10),
		buy("c", 2, 1000, 0),
	}
	assets := enrichAll(t, []model.Asset{
		{ID: "a", Name: "ETF", Type: model.AssetTypeETF},
		{ID: "c", Name: "BTC", Type: model.AssetTypeCrypto},
	}, txs, map[string]float64{"a": 100, "c": 1200}, nil, 20)

	m := ComputePortfolioMetrics(assets, txs)

	assert.InDelta(t, 3000, m.TotalValue, 1e-9)
	assert.InDelta(t, 2500, m.TotalInvested, 1e-9)
	assert.InDelta(t, 500, m.TotalProfitLoss, 1e-9)
	assert.InDelta(t, 20, m.TotalProfitLossPercentage, 1e-9)

	var sumCost float64
	for _, a := range assets {
		sumCost += a.TotalCost
	}
	assert.InDelta(t, sumCost, m.TotalInvested, 1e-9, "ledger and enriched cost must agree")
}

func TestGroupByCategory_FixedOrderAndArchived(t *testing.T) {
	txs := []model.Transaction{
		buy("a", 10, 10, 0),
		buy("old", 5, 10, 0),
		sell("old", 5, 12, 3),
		buy("s", 1000, 1, 0),
	}
	assets := enrichAll(t, []model.Asset{
		{ID: "s", Name: "Savings", Type: model.AssetTypeSavings},
		{ID: "a", Name: "ETF", Type: model.AssetTypeETF},
		{ID: "old", Name: "Sold ETF", Type: model.AssetTypeETF},
	}, txs, map[string]float64{"a": 20, "old": 15}, nil, 10)
	total := ComputePortfolioMetrics(assets, txs).TotalValue

	cats := GroupByCategory(assets, txs, total)

	require.Len(t, cats, 3)
	assert.Equal(t, model.AssetTypeETF, cats[0].Type)
	assert.Equal(t, "Stocks & Funds", cats[0].Name)
	assert.Equal(t, model.AssetTypeCrypto, cats[1].Type)
	assert.Equal(t, model.AssetTypeSavings, cats[2].Type)

	etf := cats[0]
	require.Len(t, etf.Items, 1)
	require.Len(t, etf.ArchivedItems, 1)
	assert.Equal(t, "a", etf.Items[0].ID)
	assert.Equal(t, "old", etf.ArchivedItems[0].ID)
	assert.InDelta(t, 200, etf.Total, 1e-9)
	assert.InDelta(t, 90, etf.Invested, 1e-9, "archived position still counts: 100 + 50 - 60")
	assert.InDelta(t, 200.0/1200*100, etf.Percentage, 1e-9)

	assert.Empty(t, cats[1].Items)
	assert.NotNil(t, cats[1].Items)
	assert.Zero(t, cats[1].Percentage)

	var pct float64
	for _, c := range cats {
		pct += c.Percentage
	}
	assert.InDelta(t, 100, pct, 1e-9)
}

func TestGroupByCategory_ZeroTotalValue(t *testing.T) {
	txs := []model.Transaction{buy("a", 1, 10, 0)}
	assets := enrichAll(t, []model.Asset{{ID: "a", Name: "ETF", Type: model.AssetTypeETF}}, txs, nil, nil, 1)

	cats := GroupByCategory(assets, txs, 0)

	for _, c := range cats {
		assert.Zero(t, c.Percentage)
		for _, item := range c.Items {
			assert.Zero(t, item.Percentage)
			assert.False(t, math.IsNaN(item.Percentage))
		}
	}
}

func TestGroupByCategory_SavingsItemsCarryInterest(t *testing.T) {
	txs := []model.Transaction{buy("s", 1000, 1, 0)}
	current := 3.0
	enriched, err := Enrich(Inputs{
		Asset:        model.Asset{ID: "s", Name: "Livret", Type: model.AssetTypeSavings},
		Transactions: txs,
		Rates:        []model.InterestRate{rate("s", 3, 0, nil)},
		CurrentRate:  &current,
		Today:        onDay(365),
	})
	require.NoError(t, err)

	cats := GroupByCategory([]model.AssetWithPrice{enriched}, txs, enriched.TotalValue)

	require.Len(t, cats[2].Items, 1)
	item := cats[2].Items[0]
	require.NotNil(t, item.InterestRate)
	require.NotNil(t, item.AccruedInterest)
	assert.Equal(t, 3.0, *item.InterestRate)
	assert.InDelta(t, 30, *item.AccruedInterest, 1e-9)
	assert.InDelta(t, 100, item.Percentage, 1e-9)
}

func TestGroupByCategory_FractionalSellOffIsArchived(t *testing.T) {
	txs := []model.Transaction{
		buy("c", 0.3, 100, 0),
		sell("c", 0.1, 100, 1),
		sell("c", 0.2, 100, 2),
	}
	assets := enrichAll(t, []model.Asset{{ID: "c", Name: "ETH", Type: model.AssetTypeCrypto}}, txs, map[string]float64{"c": 100}, nil, 3)

	cats := GroupByCategory(assets, txs, 0)

	assert.Empty(t, cats[1].Items)
	assert.Len(t, cats[1].ArchivedItems, 1)
}

func TestGroupByCategory_OversoldIsListedNowhere(t *testing.T) {
	assets := []model.AssetWithPrice{{
		Asset:         model.Asset{ID: "x", Name: "CW8", Type: model.AssetTypeETF},
		TotalQuantity: -2,
		TotalValue:    -200,
	}}

	cats := GroupByCategory(assets, nil, 0)

	assert.Empty(t, cats[0].Items)
	assert.Empty(t, cats[0].ArchivedItems)
	assert.Equal(t, -200.0, cats[0].Total, "oversold value still counts towards the total")
}
