package valuation

import (
	"fmt"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// Capability tells the caller which inputs a Strategy values an asset from.
type Capability int

const (
	// PriceDriven strategies need a current unit price.
	PriceDriven Capability = iota
	// InterestDriven strategies need the rate history and current rate.
	InterestDriven
)

func (c Capability) String() string {
	switch c {
	case PriceDriven:
		return "price"
	case InterestDriven:
		return "interest"
	}
	return fmt.Sprintf("Capability(%d)", int(c))
}

// MarketData carries the optional quote details passed through to the enriched asset.
type MarketData struct {
	Change24h     *float64
	DayHigh       *float64
	DayLow        *float64
	PreviousClose *float64
	Volume        *int64
}

// Inputs is everything needed to value one asset.
// Price and Market are read by price-driven strategies; Rates and CurrentRate by
// interest-driven ones. Transactions must already be filtered to the asset.
type Inputs struct {
	Asset        model.Asset
	Transactions []model.Transaction
	Price        float64
	Market       MarketData
	Rates        []model.InterestRate
	CurrentRate  *float64
	Today        time.Time
}

// Strategy values one kind of asset.
type Strategy interface {
	Capability() Capability
	Valuate(in Inputs) model.AssetWithPrice
}

var strategies = map[model.AssetType]Strategy{
	model.AssetTypeETF:     marketStrategy{},
	model.AssetTypeCrypto:  marketStrategy{},
	model.AssetTypeSavings: savingsStrategy{},
}

// StrategyFor returns the valuation strategy for an asset type.
// It fails with apperrors.ErrUnknownAssetType for a type outside the known set.
func StrategyFor(t model.AssetType) (Strategy, error) {
	s, ok := strategies[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAssetType, t)
	}
	return s, nil
}

// Enrich values the asset in, dispatching on its type.
func Enrich(in Inputs) (model.AssetWithPrice, error) {
	s, err := StrategyFor(in.Asset.Type)
	if err != nil {
		return model.AssetWithPrice{}, err
	}
	return s.Valuate(in), nil
}

// marketStrategy values etf and crypto holdings at quantity times the current price.
// A zero or stale price is used as given.
type marketStrategy struct{}

func (marketStrategy) Capability() Capability { return PriceDriven }

func (marketStrategy) Valuate(in Inputs) model.AssetWithPrice {
	pos := ComputePosition(in.Transactions)
	value := pos.Quantity * in.Price
	profitLoss := value - pos.Cost

	return model.AssetWithPrice{
		Asset:                in.Asset,
		CurrentPrice:         in.Price,
		TotalQuantity:        pos.Quantity,
		TotalValue:           value,
		TotalCost:            pos.Cost,
		AveragePrice:         pos.AveragePrice(),
		ProfitLoss:           profitLoss,
		ProfitLossPercentage: percentOfCost(profitLoss, pos.Cost),
		Change24h:            in.Market.Change24h,
		DayHigh:              in.Market.DayHigh,
		DayLow:               in.Market.DayLow,
		PreviousClose:        in.Market.PreviousClose,
		Volume:               in.Market.Volume,
	}
}

// savingsStrategy values a savings account at its balance plus accrued interest.
// The unit price of a savings account is always 1.
type savingsStrategy struct{}

func (savingsStrategy) Capability() Capability { return InterestDriven }

func (savingsStrategy) Valuate(in Inputs) model.AssetWithPrice {
	acc := AccrueInterest(in.Transactions, in.Rates, in.Today)
	pos := ComputePosition(in.Transactions)
	interest := acc.Interest

	avg := 0.0
	if acc.Balance > 0 {
		avg = pos.Cost / acc.Balance
	}

	return model.AssetWithPrice{
		Asset:                in.Asset,
		CurrentPrice:         1,
		TotalQuantity:        acc.Balance,
		TotalValue:           acc.Balance + interest,
		TotalCost:            pos.Cost,
		AveragePrice:         avg,
		ProfitLoss:           interest,
		ProfitLossPercentage: percentOfCost(interest, pos.Cost),
		AccruedInterest:      &interest,
		InterestRate:         in.CurrentRate,
	}
}

// percentOfCost is part/cost*100, or 0 unless cost is positive.
func percentOfCost(part, cost float64) float64 {
	if cost > 0 {
		return part / cost * 100
	}
	return 0
}
