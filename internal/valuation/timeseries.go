package valuation

import (
	"fmt"
	"slices"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// DefaultDateLayout renders chart labels as dd/mm/yyyy.
const DefaultDateLayout = "02/01/2006"

// SeriesOptions configures BuildTimeSeries.
type SeriesOptions struct {
	// Today is the last day of the series.
	Today time.Time
	// DateLayout is the time layout of the point labels. Defaults to DefaultDateLayout.
	DateLayout string
	// Rates holds the rate history of interest-driven assets, keyed by asset ID.
	Rates map[string][]model.InterestRate
}

// BuildTimeSeries replays the ledger over every calendar day from the first
// transaction to today, inclusive, and values each asset on each day.
//
// A price-driven asset is worth the quantity it held that day times its current
// price: historical prices are not known, so the chart shows today's price
// applied to past holdings. An interest-driven asset is worth its balance plus
// the interest accrued up to that day. An asset without transactions yet is worth
// 0. Assets sharing a name are summed into one series.
//
// The last point therefore equals each asset's enriched TotalValue. An empty
// ledger yields an empty series.
func BuildTimeSeries(assets []model.AssetWithPrice, transactions []model.Transaction, opts SeriesOptions) []model.ChartPoint {
	points := []model.ChartPoint{}
	if len(transactions) == 0 {
		return points
	}

	layout := opts.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	today := Day(opts.Today)

	first := Day(transactions[0].TransactionDate)
	for _, t := range transactions[1:] {
		if d := Day(t.TransactionDate); d.Before(first) {
			first = d
		}
	}
	if first.After(today) {
		return points
	}

	series := make([]*assetSeries, 0, len(assets))
	for _, a := range assets {
		series = append(series, newAssetSeries(a, FilterByAsset(transactions, a.ID), opts.Rates[a.ID]))
	}

	points = slices.Grow(points, DaysBetween(first, today)+1)
	for day := first; !day.After(today); day = day.AddDate(0, 0, 1) {
		values := make(map[string]float64, len(series))
		for _, s := range series {
			values[s.name] += s.valueAt(day)
		}
		points = append(points, model.ChartPoint{
			Date:   day,
			Label:  day.Format(layout),
			Values: values,
		})
	}

	return points
}

// assetSeries walks one asset's date-sorted transactions forward as the days advance,
// so each transaction is applied once instead of being re-scanned for every day.
type assetSeries struct {
	name           string
	price          float64
	interestDriven bool
	transactions   []model.Transaction
	rates          []model.InterestRate

	next     int
	quantity float64
}

func newAssetSeries(a model.AssetWithPrice, transactions []model.Transaction, rates []model.InterestRate) *assetSeries {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(x, y model.Transaction) int {
		return Day(x.TransactionDate).Compare(Day(y.TransactionDate))
	})

	s, err := StrategyFor(a.Type)
	return &assetSeries{
		name:           a.Name,
		price:          a.CurrentPrice,
		interestDriven: err == nil && s.Capability() == InterestDriven,
		transactions:   sorted,
		rates:          rates,
	}
}

// valueAt must be called with non-decreasing days.
func (s *assetSeries) valueAt(day time.Time) float64 {
	for s.next < len(s.transactions) && !Day(s.transactions[s.next].TransactionDate).After(day) {
		s.quantity += quantityDelta(s.transactions[s.next])
		s.next++
	}
	if s.next == 0 {
		return 0
	}
	if s.interestDriven {
		acc := AccrueInterest(s.transactions[:s.next], s.rates, day)
		return acc.Balance + acc.Interest
	}
	return s.quantity * s.price
}

// chartRanges are the chart's selectable windows, in days back from today.
var chartRanges = map[string]int{
	"7d": 7,
	"1m": 30,
	"3m": 90,
	"6m": 180,
	"1y": 365,
}

// FilterRange keeps the points dated on or after today minus the window named by rng.
// An empty rng or "all" keeps every point; an unknown name is an error.
func FilterRange(points []model.ChartPoint, rng string, today time.Time) ([]model.ChartPoint, error) {
	if rng == "" || rng == "all" {
		return points, nil
	}
	days, ok := chartRanges[rng]
	if !ok {
		return nil, fmt.Errorf("%w: unknown range %q", apperrors.ErrInvalidDateRange, rng)
	}

	cutoff := Day(today).AddDate(0, 0, -days)
	filtered := make([]model.ChartPoint, 0, len(points))
	for _, p := range points {
		if !p.Date.Before(cutoff) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
