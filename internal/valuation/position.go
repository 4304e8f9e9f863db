package valuation

import "github.com/ndewijer/Household-Wealth-Dashboard/internal/model"

// Position is the quantity held and the net amount invested in one asset.
type Position struct {
	Quantity float64
	Cost     float64
}

// ComputePosition folds a ledger into a Position.
// A buy adds its quantity and total amount, a sell subtracts both. The fold is a
// plain sum, so transaction order does not matter. Sells exceeding buys are not
// rejected and leave a negative quantity.
func ComputePosition(transactions []model.Transaction) Position {
	var p Position
	for _, t := range transactions {
		switch t.Type {
		case model.TransactionTypeBuy:
			p.Quantity += t.Quantity
			p.Cost += t.TotalAmount
		case model.TransactionTypeSell:
			p.Quantity -= t.Quantity
			p.Cost -= t.TotalAmount
		}
	}
	return p
}

// AveragePrice returns the cost per unit held, or 0 when nothing is held.
func (p Position) AveragePrice() float64 {
	if p.Quantity > 0 {
		return p.Cost / p.Quantity
	}
	return 0
}

// FilterByAsset returns the transactions that belong to assetID, in ledger order.
func FilterByAsset(transactions []model.Transaction, assetID string) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.AssetID == assetID {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// NetInvested returns buys minus sells, by total amount, over the asset's own
// transactions in the full ledger.
func NetInvested(transactions []model.Transaction, assetID string) float64 {
	return ComputePosition(FilterByAsset(transactions, assetID)).Cost
}

func quantityDelta(t model.Transaction) float64 {
	switch t.Type {
	case model.TransactionTypeBuy:
		return t.Quantity
	case model.TransactionTypeSell:
		return -t.Quantity
	}
	return 0
}
