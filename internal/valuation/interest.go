package valuation

import (
	"slices"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

const daysPerYear = 365

// Accrual is the outcome of replaying a savings ledger: the deposited balance
// and the simple interest it earned.
type Accrual struct {
	Balance  float64
	Interest float64
}

// AccrueInterest replays the transactions of one savings asset in date order and
// accrues interest on the running balance up to today.
//
// Between two consecutive transactions (and from the last one to today) the held
// balance earns interest for every rate interval overlapping that span, so a rate
// change falling strictly between two transactions is neither skipped nor counted
// twice. Interest does not compound: the balance only changes on transactions.
//
// Day counts are half-open: the span [from, to) earns to-from days. Splitting a
// rate interval into two adjacent intervals at the same rate therefore yields the
// same interest. Spans not covered by any interval earn nothing, and an empty
// rate history yields zero interest.
//
// Parameters:
//   - transactions: the asset's transactions, in any order
//   - rates: the asset's rate history, non-overlapping
//   - today: the valuation date; only its civil date is used
func AccrueInterest(transactions []model.Transaction, rates []model.InterestRate, today time.Time) Accrual {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b model.Transaction) int {
		return Day(a.TransactionDate).Compare(Day(b.TransactionDate))
	})

	today = Day(today)

	var acc Accrual
	var cursor time.Time
	for _, t := range sorted {
		date := Day(t.TransactionDate)
		if acc.Balance > 0 {
			acc.Interest += interestForSpan(acc.Balance, cursor, date, rates)
		}
		acc.Balance += quantityDelta(t)
		cursor = date
	}

	if acc.Balance > 0 && cursor.Before(today) {
		acc.Interest += interestForSpan(acc.Balance, cursor, today, rates)
	}

	return acc
}

// interestForSpan sums the interest earned by balance over [from, to), one term
// per rate interval overlapping the span.
func interestForSpan(balance float64, from, to time.Time, rates []model.InterestRate) float64 {
	var interest float64
	for _, r := range rates {
		start := laterOf(from, Day(r.StartDate))
		end := to
		if r.EndDate != nil && Day(*r.EndDate).Before(end) {
			end = Day(*r.EndDate)
		}

		days := DaysBetween(start, end)
		if days <= 0 {
			continue
		}
		interest += balance * dailyRate(r.Rate) * float64(days)
	}
	return interest
}

// dailyRate converts an annual percentage into a per-day fraction.
func dailyRate(annualPercent float64) float64 {
	return annualPercent / 100 / daysPerYear
}

// RateOn returns the rate of the interval covering day, or nil when none does.
func RateOn(rates []model.InterestRate, day time.Time) *float64 {
	day = Day(day)
	for _, r := range rates {
		if Day(r.StartDate).After(day) {
			continue
		}
		if r.EndDate != nil && !Day(*r.EndDate).After(day) {
			continue
		}
		rate := r.Rate
		return &rate
	}
	return nil
}
