package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// Day returns midnight UTC of the given civil date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	// Simple creation with defaults (an etf)
//	asset := testutil.NewAsset().Build(t, db)
//
//	// Customized asset
//	asset := testutil.NewAsset().
//	    WithName("Livret A").
//	    Savings().
//	    Build(t, db)
type AssetBuilder struct {
	ID     string
	Name   string
	Symbol string
	Isin   string
	Type   model.AssetType
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		ID:     MakeID(),
		Name:   MakeAssetName("Test Asset"),
		Symbol: MakeSymbol("CW8"),
		Type:   model.AssetTypeETF,
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.Symbol = symbol
	return b
}

// WithIsin sets a custom ISIN.
func (b *AssetBuilder) WithIsin(isin string) *AssetBuilder {
	b.Isin = isin
	return b
}

// WithType sets the asset type.
func (b *AssetBuilder) WithType(t model.AssetType) *AssetBuilder {
	b.Type = t
	return b
}

// Crypto makes the asset a crypto currency.
func (b *AssetBuilder) Crypto() *AssetBuilder {
	b.Type = model.AssetTypeCrypto
	return b
}

// Savings makes the asset a savings account.
func (b *AssetBuilder) Savings() *AssetBuilder {
	b.Type = model.AssetTypeSavings
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	query := `
		INSERT INTO assets (id, name, symbol, isin, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var isin any
	if b.Isin != "" {
		isin = b.Isin
	}

	_, err := db.Exec(query, b.ID, b.Name, b.Symbol, isin, string(b.Type),
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:        b.ID,
		Name:      b.Name,
		Symbol:    b.Symbol,
		Isin:      b.Isin,
		Type:      b.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(asset.ID).
//	    Sell().
//	    WithQuantity(2).
//	    WithPrice(100).
//	    WithDate(testutil.Day(2024, time.March, 1)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID           string
	AssetID      string
	Type         model.TransactionType
	Quantity     float64
	PricePerUnit float64
	TotalAmount  *float64
	Date         time.Time
}

// NewTransaction creates a TransactionBuilder for a buy of 10 units at 100 on 2024-01-01.
func NewTransaction(assetID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:           MakeID(),
		AssetID:      assetID,
		Type:         model.TransactionTypeBuy,
		Quantity:     10,
		PricePerUnit: 100,
		Date:         Day(2024, time.January, 1),
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// Sell makes the transaction a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionTypeSell
	return b
}

// WithQuantity sets the number of units.
func (b *TransactionBuilder) WithQuantity(q float64) *TransactionBuilder {
	b.Quantity = q
	return b
}

// WithPrice sets the price per unit.
func (b *TransactionBuilder) WithPrice(p float64) *TransactionBuilder {
	b.PricePerUnit = p
	return b
}

// WithTotal overrides the total amount, which otherwise is quantity times price.
func (b *TransactionBuilder) WithTotal(total float64) *TransactionBuilder {
	b.TotalAmount = &total
	return b
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(d time.Time) *TransactionBuilder {
	b.Date = d
	return b
}

// Model returns the transaction without storing it.
func (b *TransactionBuilder) Model() model.Transaction {
	total := b.Quantity * b.PricePerUnit
	if b.TotalAmount != nil {
		total = *b.TotalAmount
	}
	return model.Transaction{
		ID:              b.ID,
		AssetID:         b.AssetID,
		Type:            b.Type,
		Quantity:        b.Quantity,
		PricePerUnit:    b.PricePerUnit,
		TotalAmount:     total,
		TransactionDate: b.Date,
	}
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	tx := b.Model()
	query := `
		INSERT INTO transactions (id, asset_id, type, quantity, price_per_unit, total_amount, transaction_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, tx.ID, tx.AssetID, string(tx.Type), tx.Quantity, tx.PricePerUnit,
		tx.TotalAmount, tx.TransactionDate.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return tx
}

// InterestRateBuilder provides a fluent interface for creating rate history intervals.
//
// Example usage:
//
//	testutil.NewInterestRate(asset.ID, 3).
//	    From(testutil.Day(2024, time.January, 1)).
//	    Until(testutil.Day(2024, time.July, 1)).
//	    Build(t, db)
type InterestRateBuilder struct {
	ID        string
	AssetID   string
	Rate      float64
	StartDate time.Time
	EndDate   *time.Time
}

// NewInterestRate creates an open-ended interval of rate percent starting 2024-01-01.
func NewInterestRate(assetID string, rate float64) *InterestRateBuilder {
	return &InterestRateBuilder{
		ID:        MakeID(),
		AssetID:   assetID,
		Rate:      rate,
		StartDate: Day(2024, time.January, 1),
	}
}

// From sets the inclusive start date.
func (b *InterestRateBuilder) From(d time.Time) *InterestRateBuilder {
	b.StartDate = d
	return b
}

// Until sets the exclusive end date.
func (b *InterestRateBuilder) Until(d time.Time) *InterestRateBuilder {
	b.EndDate = &d
	return b
}

// Build creates the interval in the database and returns it.
func (b *InterestRateBuilder) Build(t *testing.T, db *sql.DB) model.InterestRate {
	t.Helper()

	var end any
	if b.EndDate != nil {
		end = b.EndDate.Format("2006-01-02")
	}

	query := `
		INSERT INTO interest_rate_history (id, asset_id, rate, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.AssetID, b.Rate, b.StartDate.Format("2006-01-02"), end)
	if err != nil {
		t.Fatalf("Failed to create test interest rate: %v", err)
	}

	return model.InterestRate{
		ID:        b.ID,
		AssetID:   b.AssetID,
		Rate:      b.Rate,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

// Convenience functions

// CreateAsset creates an asset with the given name and type.
//
// Example usage:
//
//	asset := testutil.CreateAsset(t, db, "Bitcoin", model.AssetTypeCrypto)
func CreateAsset(t *testing.T, db *sql.DB, name string, assetType model.AssetType) model.Asset {
	t.Helper()
	return NewAsset().WithName(name).WithType(assetType).Build(t, db)
}

// CreateBuy records a buy of quantity units at price on date.
func CreateBuy(t *testing.T, db *sql.DB, assetID string, quantity, price float64, date time.Time) model.Transaction {
	t.Helper()
	return NewTransaction(assetID).WithQuantity(quantity).WithPrice(price).WithDate(date).Build(t, db)
}

// CreateSell records a sell of quantity units at price on date.
func CreateSell(t *testing.T, db *sql.DB, assetID string, quantity, price float64, date time.Time) model.Transaction {
	t.Helper()
	return NewTransaction(assetID).Sell().WithQuantity(quantity).WithPrice(price).WithDate(date).Build(t, db)
}
