package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// TransactionRepository provides data access methods for the transactions table.
// The ledger is append-only: there is no update or delete.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `t.id, t.asset_id, t.type, t.quantity, t.price_per_unit, t.total_amount, t.transaction_date, t.created_at, t.updated_at`

// GetTransactions retrieves the full ledger, most recent first.
// Returns an empty slice if there are no transactions.
func (r *TransactionRepository) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		ORDER BY t.transaction_date DESC, t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}

// GetTransactionResponses retrieves transactions joined with their asset, most recent first.
// An empty assetID returns the whole ledger.
func (r *TransactionRepository) GetTransactionResponses(ctx context.Context, assetID string) ([]model.TransactionResponse, error) {
	query := `
		SELECT ` + transactionColumns + `, a.name, a.symbol, a.type
		FROM transactions t
		JOIN assets a ON t.asset_id = a.id
	`

	var args []any
	if assetID != "" {
		query += ` WHERE t.asset_id = ?`
		args = append(args, assetID)
	}
	query += ` ORDER BY t.transaction_date DESC, t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	responses := []model.TransactionResponse{}
	for rows.Next() {
		var t model.TransactionResponse
		if err := scanTransaction(rows, &t.Transaction, &t.AssetName, &t.AssetSymbol, &t.AssetType); err != nil {
			return nil, err
		}
		responses = append(responses, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return responses, nil
}

// GetTransaction retrieves one transaction with its asset details.
// Returns apperrors.ErrTransactionNotFound if no transaction has that ID.
func (r *TransactionRepository) GetTransaction(ctx context.Context, id string) (model.TransactionResponse, error) {
	query := `
		SELECT ` + transactionColumns + `, a.name, a.symbol, a.type
		FROM transactions t
		JOIN assets a ON t.asset_id = a.id
		WHERE t.id = ?
	`

	var t model.TransactionResponse
	err := scanTransaction(r.db.QueryRowContext(ctx, query, id), &t.Transaction, &t.AssetName, &t.AssetSymbol, &t.AssetType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TransactionResponse{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return t, nil
}

// InsertTransaction appends a transaction to the ledger.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t model.Transaction) error {
	query := `
		INSERT INTO transactions (id, asset_id, type, quantity, price_per_unit, total_amount, transaction_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.AssetID,
		string(t.Type),
		t.Quantity,
		t.PricePerUnit,
		t.TotalAmount,
		formatDate(t.TransactionDate),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// scanTransaction scans the transaction columns into t, followed by any extra destinations.
func scanTransaction(row rowScanner, t *model.Transaction, extra ...any) error {
	var txType, dateStr, createdAtStr, updatedAtStr string

	dest := []any{
		&t.ID,
		&t.AssetID,
		&txType,
		&t.Quantity,
		&t.PricePerUnit,
		&t.TotalAmount,
		&dateStr,
		&createdAtStr,
		&updatedAtStr,
	}
	dest = append(dest, extra...)

	err := row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan transactions table results: %w", err)
	}

	t.Type = model.TransactionType(txType)

	if t.TransactionDate, err = ParseTime(dateStr); err != nil {
		return err
	}
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return err
	}
	if t.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return err
	}

	return nil
}
