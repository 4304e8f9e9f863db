package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// AssetRepository provides data access methods for the assets table.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, name, symbol, isin, type, created_at, updated_at`

// GetAssets retrieves every asset, ordered by name.
// Returns an empty slice if no assets exist.
func (r *AssetRepository) GetAssets(ctx context.Context) ([]model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY name ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets table: %w", err)
	}

	return assets, nil
}

// GetAsset retrieves a single asset by ID.
// Returns apperrors.ErrAssetNotFound if no asset has that ID.
func (r *AssetRepository) GetAsset(ctx context.Context, id string) (model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ?`

	a, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, err
	}
	return a, nil
}

// InsertAsset stores a new asset. The caller assigns the ID and timestamps.
func (r *AssetRepository) InsertAsset(ctx context.Context, a model.Asset) error {
	query := `
		INSERT INTO assets (id, name, symbol, isin, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var isin sql.NullString
	if a.Isin != "" {
		isin = sql.NullString{String: a.Isin, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Symbol,
		isin,
		string(a.Type),
		formatTimestamp(a.CreatedAt),
		formatTimestamp(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

// UpdateAssetName renames an asset. Name is the only mutable field.
// Returns apperrors.ErrAssetNotFound if no asset has that ID.
func (r *AssetRepository) UpdateAssetName(ctx context.Context, id, name string, updatedAt time.Time) error {
	query := `UPDATE assets SET name = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, name, formatTimestamp(updatedAt), id)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (model.Asset, error) {
	var a model.Asset
	var isin sql.NullString
	var assetType, createdAtStr, updatedAtStr string

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Symbol,
		&isin,
		&assetType,
		&createdAtStr,
		&updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, err
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to scan assets table results: %w", err)
	}

	a.Isin = isin.String
	a.Type = model.AssetType(assetType)

	if a.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Asset{}, err
	}
	if a.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return model.Asset{}, err
	}

	return a, nil
}
