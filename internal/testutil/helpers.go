package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/repository"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
)

// NewTestAssetService creates an AssetService backed by db.
func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	return service.NewAssetService(
		db,
		repository.NewAssetRepository(db),
		repository.NewInterestRateRepository(db),
	)
}

// NewTestTransactionService creates a TransactionService backed by db.
func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewAssetRepository(db),
	)
}

// NewTestDashboardService creates a DashboardService backed by db, pricing assets
// through prices. Its clock is frozen at today, in UTC.
func NewTestDashboardService(t *testing.T, db *sql.DB, prices service.PriceSource, today time.Time) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewAssetRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewInterestRateRepository(db),
		prices,
		service.DashboardConfig{
			Location:    time.UTC,
			Concurrency: 4,
			Now:         func() time.Time { return today },
		},
		zerolog.Nop(),
	)
}

// NewTestSystemService creates a SystemService backed by db.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, map[string]bool{"auth": true})
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeISIN generates a realistic ISIN code for testing.
//
// Example usage:
//
//	isin := testutil.MakeISIN("FR")
//	// Returns: "FR1A2B3C4D5E"
func MakeISIN(prefix string) string {
	if prefix == "" {
		prefix = "FR"
	}
	return prefix + randomAlphanumeric(10)
}

// MakeSymbol generates a ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("CW8")
//	// Returns: "CW81A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// MakeAssetName generates a unique asset name for testing.
//
// Example usage:
//
//	name := testutil.MakeAssetName("World ETF")
//	// Returns: "World ETF XYZ789"
func MakeAssetName(base string) string {
	if base == "" {
		base = "Asset"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
