package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/repository"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/validation"
)

// amountTolerance is how far a submitted total may be from quantity times price.
var amountTolerance = decimal.New(1, -2)

// TransactionService handles ledger business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	assetRepo       *repository.AssetRepository
	now             func() time.Time
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		now:             time.Now,
	}
}

// GetTransactions retrieves transactions with asset details, most recent first.
// An empty assetID returns the whole ledger.
func (s *TransactionService) GetTransactions(ctx context.Context, assetID string) ([]model.TransactionResponse, error) {
	return s.transactionRepo.GetTransactionResponses(ctx, assetID)
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound if it does not exist.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (model.TransactionResponse, error) {
	return s.transactionRepo.GetTransaction(ctx, transactionID)
}

// CreateTransaction appends a validated buy or sell to the ledger.
//
// The missing one of quantity, price per unit and total amount is derived from
// the other two. When all three are given, the total must be within one cent of
// quantity times price.
//
// Returns:
//   - apperrors.ErrAssetNotFound if the asset does not exist
//   - apperrors.ErrAmountMismatch if the three amounts disagree
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (model.TransactionResponse, error) {
	asset, err := s.assetRepo.GetAsset(ctx, req.AssetID)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	date, err := validation.ParseDate(req.TransactionDate)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	quantity, price, total, err := DeriveAmounts(req.Quantity, req.PricePerUnit, req.TotalAmount)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	now := s.now().UTC()
	transaction := model.Transaction{
		ID:              uuid.New().String(),
		AssetID:         asset.ID,
		Type:            model.TransactionType(req.Type),
		Quantity:        quantity,
		PricePerUnit:    price,
		TotalAmount:     total,
		TransactionDate: date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return model.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return model.TransactionResponse{
		Transaction: transaction,
		AssetName:   asset.Name,
		AssetSymbol: asset.Symbol,
		AssetType:   asset.Type,
	}, nil
}

// DeriveAmounts completes a (quantity, pricePerUnit, totalAmount) triple from any two of them.
//
// A derived total is rounded to the cent; a derived quantity or price to 8 decimals.
// With all three present, the total is kept as given if it lies within one cent
// of quantity times price, else apperrors.ErrAmountMismatch is returned. Fewer than
// two values is also an error.
func DeriveAmounts(quantity, pricePerUnit, totalAmount *float64) (q, p, t float64, err error) {
	switch {
	case quantity != nil && pricePerUnit != nil && totalAmount != nil:
		dq, dp, dt := decimal.NewFromFloat(*quantity), decimal.NewFromFloat(*pricePerUnit), decimal.NewFromFloat(*totalAmount)
		if dq.Mul(dp).Sub(dt).Abs().GreaterThan(amountTolerance) {
			return 0, 0, 0, fmt.Errorf("%w: %s x %s != %s", apperrors.ErrAmountMismatch, dq, dp, dt)
		}
		return *quantity, *pricePerUnit, *totalAmount, nil

	case quantity != nil && pricePerUnit != nil:
		dt := decimal.NewFromFloat(*quantity).Mul(decimal.NewFromFloat(*pricePerUnit)).Round(2)
		return *quantity, *pricePerUnit, dt.InexactFloat64(), nil

	case quantity != nil && totalAmount != nil:
		dp := decimal.NewFromFloat(*totalAmount).DivRound(decimal.NewFromFloat(*quantity), 8)
		return *quantity, dp.InexactFloat64(), *totalAmount, nil

	case pricePerUnit != nil && totalAmount != nil:
		dq := decimal.NewFromFloat(*totalAmount).DivRound(decimal.NewFromFloat(*pricePerUnit), 8)
		return dq.InexactFloat64(), *pricePerUnit, *totalAmount, nil
	}

	return 0, 0, 0, fmt.Errorf("at least two of quantity, pricePerUnit and totalAmount are required")
}
