package valuation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

func TestAccrueInterest_FlatRateFullYear(t *testing.T) {
	txs := []model.Transaction{buy("s", 1000, 1, 0)}
	rates := []model.InterestRate{rate("s", 3, 0, nil)}

	acc := AccrueInterest(txs, rates, onDay(365))

	assert.InDelta(t, 1000, acc.Balance, 1e-9)
	assert.InDelta(t, 30, acc.Interest, 1e-9)
}

func TestAccrueInterest_RateChange(t *testing.T) {
	txs := []model.Transaction{buy("s", 1000, 1, 0)}
	rates := []model.InterestRate{
		rate("s", 2, 0, intPtr(100)),
		rate("s", 4, 100, nil),
	}

	acc := AccrueInterest(txs, rates, onDay(200))

	want := 1000*0.02*100/365 + 1000*0.04*100/365
	assert.InDelta(t, want, acc.Interest, 1e-9)
}

func TestAccrueInterest_SplitIntervalIsIdempotent(t *testing.T) {
	txs := []model.Transaction{
		buy("s", 1000, 1, 0),
		buy("s", 500, 1, 40),
		sell("s", 200, 1, 120),
	}
	whole := []model.InterestRate{rate("s", 3, 0, nil)}

	for _, split := range []int{1, 40, 73, 120, 199} {
		parts := []model.InterestRate{
			rate("s", 3, 0, intPtr(split)),
			rate("s", 3, split, nil),
		}

		want := AccrueInterest(txs, whole, onDay(200))
		got := AccrueInterest(txs, parts, onDay(200))

		assert.InDelta(t, want.Interest, got.Interest, 1e-9, "split at day %d", split)
	}
}

func TestAccrueInterest_RateChangeBetweenTransactions(t *testing.T) {
	// WHY: the span between two deposits must be decomposed over both intervals,
	// not valued at whichever rate was in effect at the first deposit.
	txs := []model.Transaction{
		buy("s", 1000, 1, 0),
		buy("s", 1000, 1, 100),
	}
	rates := []model.InterestRate{
		rate("s", 1, 0, intPtr(50)),
		rate("s", 5, 50, nil),
	}

	acc := AccrueInterest(txs, rates, onDay(100))

	want := 1000*0.01*50/365 + 1000*0.05*50/365
	assert.InDelta(t, want, acc.Interest, 1e-9)
	assert.InDelta(t, 2000, acc.Balance, 1e-9)
}

func TestAccrueInterest_UnsortedInput(t *testing.T) {
	rates := []model.InterestRate{rate("s", 2.5, 0, nil)}
	sorted := []model.Transaction{
		buy("s", 1000, 1, 0),
		sell("s", 300, 1, 60),
		buy("s", 800, 1, 90),
	}
	reversed := []model.Transaction{sorted[2], sorted[1], sorted[0]}

	assert.InDelta(t,
		AccrueInterest(sorted, rates, onDay(150)).Interest,
		AccrueInterest(reversed, rates, onDay(150)).Interest,
		1e-9,
	)
}

func TestAccrueInterest_EmptyRateHistory(t *testing.T) {
	acc := AccrueInterest([]model.Transaction{buy("s", 1000, 1, 0)}, nil, onDay(365))

	assert.Zero(t, acc.Interest)
	assert.InDelta(t, 1000, acc.Balance, 1e-9)
}

func TestAccrueInterest_GapInHistoryEarnsNothing(t *testing.T) {
	txs := []model.Transaction{buy("s", 1000, 1, 0)}
	rates := []model.InterestRate{
		rate("s", 3, 0, intPtr(10)),
		rate("s", 3, 30, intPtr(40)),
	}

	acc := AccrueInterest(txs, rates, onDay(100))

	assert.InDelta(t, 1000*0.03*20/365, acc.Interest, 1e-9)
}

func TestAccrueInterest_NeverNegative(t *testing.T) {
	rates := []model.InterestRate{rate("s", 4, 0, nil)}
	ledgers := map[string][]model.Transaction{
		"empty":    nil,
		"deposit":  {buy("s", 100, 1, 0)},
		"withdraw": {buy("s", 100, 1, 0), sell("s", 100, 1, 30)},
		"oversold": {buy("s", 100, 1, 0), sell("s", 250, 1, 30)},
		"future":   {buy("s", 100, 1, 400)},
	}

	for name, txs := range ledgers {
		t.Run(name, func(t *testing.T) {
			acc := AccrueInterest(txs, rates, onDay(365))
			assert.GreaterOrEqual(t, acc.Interest, 0.0)
		})
	}
}

func TestAccrueInterest_TimeOfDayIgnored(t *testing.T) {
	txs := []model.Transaction{buy("s", 1000, 1, 0)}
	txs[0].TransactionDate = txs[0].TransactionDate.Add(23 * time.Hour)
	rates := []model.InterestRate{rate("s", 3, 0, nil)}

	acc := AccrueInterest(txs, rates, onDay(365).Add(time.Minute))

	assert.InDelta(t, 30, acc.Interest, 1e-9)
}

func TestRateOn(t *testing.T) {
	rates := []model.InterestRate{
		rate("s", 2, 10, intPtr(100)),
		rate("s", 4, 100, nil),
	}

	assert.Nil(t, RateOn(rates, onDay(9)))
	if r := RateOn(rates, onDay(10)); assert.NotNil(t, r) {
		assert.Equal(t, 2.0, *r)
	}
	if r := RateOn(rates, onDay(100)); assert.NotNil(t, r) {
		assert.Equal(t, 4.0, *r, "end date is exclusive")
	}
	assert.Nil(t, RateOn(nil, onDay(100)))
}
