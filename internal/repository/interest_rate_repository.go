package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// InterestRateRepository provides data access methods for the interest_rate_history table.
type InterestRateRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewInterestRateRepository creates a new InterestRateRepository with the provided database connection.
func NewInterestRateRepository(db *sql.DB) *InterestRateRepository {
	return &InterestRateRepository{db: db}
}

// WithTx returns a new InterestRateRepository scoped to the provided transaction.
func (r *InterestRateRepository) WithTx(tx *sql.Tx) *InterestRateRepository {
	return &InterestRateRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *InterestRateRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const interestRateColumns = `id, asset_id, rate, start_date, end_date, created_at, updated_at`

// GetInterestRateHistory retrieves the rate history of one asset, oldest interval first.
// Returns an empty slice when the asset has no recorded rates.
func (r *InterestRateRepository) GetInterestRateHistory(ctx context.Context, assetID string) ([]model.InterestRate, error) {
	query := `
		SELECT ` + interestRateColumns + `
		FROM interest_rate_history
		WHERE asset_id = ?
		ORDER BY start_date ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query interest_rate_history table: %w", err)
	}
	defer rows.Close()

	rates := []model.InterestRate{}
	for rows.Next() {
		rate, err := scanInterestRate(rows)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interest_rate_history table: %w", err)
	}

	return rates, nil
}

// GetAllInterestRateHistories retrieves the rate history of every asset in one query,
// grouped by asset ID, each oldest interval first.
func (r *InterestRateRepository) GetAllInterestRateHistories(ctx context.Context) (map[string][]model.InterestRate, error) {
	query := `
		SELECT ` + interestRateColumns + `
		FROM interest_rate_history
		ORDER BY asset_id, start_date ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query interest_rate_history table: %w", err)
	}
	defer rows.Close()

	ratesByAsset := make(map[string][]model.InterestRate)
	for rows.Next() {
		rate, err := scanInterestRate(rows)
		if err != nil {
			return nil, err
		}
		ratesByAsset[rate.AssetID] = append(ratesByAsset[rate.AssetID], rate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interest_rate_history table: %w", err)
	}

	return ratesByAsset, nil
}

// GetCurrentRate returns the rate in effect on day, or nil when no interval covers it.
func (r *InterestRateRepository) GetCurrentRate(ctx context.Context, assetID string, day time.Time) (*float64, error) {
	query := `
		SELECT rate
		FROM interest_rate_history
		WHERE asset_id = ?
		AND start_date <= ?
		AND (end_date IS NULL OR end_date > ?)
		ORDER BY start_date DESC
		LIMIT 1
	`

	d := formatDate(day)
	var rate float64
	err := r.getQuerier().QueryRowContext(ctx, query, assetID, d, d).Scan(&rate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query current interest rate: %w", err)
	}
	return &rate, nil
}

// CloseOpenInterval ends the asset's still-open interval at endDate.
// Only an interval starting before endDate is closed. It is not an error when
// there is nothing to close.
func (r *InterestRateRepository) CloseOpenInterval(ctx context.Context, assetID string, endDate, updatedAt time.Time) error {
	query := `
		UPDATE interest_rate_history
		SET end_date = ?, updated_at = ?
		WHERE asset_id = ?
		AND end_date IS NULL
		AND start_date < ?
	`

	d := formatDate(endDate)
	if _, err := r.getQuerier().ExecContext(ctx, query, d, formatTimestamp(updatedAt), assetID, d); err != nil {
		return fmt.Errorf("failed to close open interest rate interval: %w", err)
	}
	return nil
}

// InsertInterestRate stores a rate interval. The caller assigns the ID and timestamps.
func (r *InterestRateRepository) InsertInterestRate(ctx context.Context, rate model.InterestRate) error {
	query := `
		INSERT INTO interest_rate_history (id, asset_id, rate, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var endDate sql.NullString
	if rate.EndDate != nil {
		endDate = sql.NullString{String: formatDate(*rate.EndDate), Valid: true}
	}

	_, err := r.getQuerier().ExecContext(ctx, query,
		rate.ID,
		rate.AssetID,
		rate.Rate,
		formatDate(rate.StartDate),
		endDate,
		formatTimestamp(rate.CreatedAt),
		formatTimestamp(rate.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert interest rate: %w", err)
	}
	return nil
}

func scanInterestRate(row rowScanner) (model.InterestRate, error) {
	var ir model.InterestRate
	var startStr, createdAtStr, updatedAtStr string
	var endStr sql.NullString

	err := row.Scan(
		&ir.ID,
		&ir.AssetID,
		&ir.Rate,
		&startStr,
		&endStr,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return model.InterestRate{}, fmt.Errorf("failed to scan interest_rate_history table results: %w", err)
	}

	if ir.StartDate, err = ParseTime(startStr); err != nil {
		return model.InterestRate{}, err
	}
	if endStr.Valid {
		end, err := ParseTime(endStr.String)
		if err != nil {
			return model.InterestRate{}, err
		}
		ir.EndDate = &end
	}
	if ir.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.InterestRate{}, err
	}
	if ir.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return model.InterestRate{}, err
	}

	return ir, nil
}
