package valuation

import (
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

var day0 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func onDay(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func buy(assetID string, qty, price float64, day int) model.Transaction {
	return model.Transaction{
		ID:              assetID + "-buy",
		AssetID:         assetID,
		Type:            model.TransactionTypeBuy,
		Quantity:        qty,
		PricePerUnit:    price,
		TotalAmount:     qty * price,
		TransactionDate: onDay(day),
	}
}

func sell(assetID string, qty, price float64, day int) model.Transaction {
	t := buy(assetID, qty, price, day)
	t.ID = assetID + "-sell"
	t.Type = model.TransactionTypeSell
	return t
}

func rate(assetID string, pct float64, from int, to *int) model.InterestRate {
	r := model.InterestRate{
		AssetID:   assetID,
		Rate:      pct,
		StartDate: onDay(from),
	}
	if to != nil {
		end := onDay(*to)
		r.EndDate = &end
	}
	return r
}

func intPtr(i int) *int { return &i }
