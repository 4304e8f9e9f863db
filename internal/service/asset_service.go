package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/repository"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/validation"
)

// AssetService handles asset and interest rate business logic.
type AssetService struct {
	db        *sql.DB
	assetRepo *repository.AssetRepository
	rateRepo  *repository.InterestRateRepository
	now       func() time.Time
}

// NewAssetService creates a new AssetService with the provided repository dependencies.
func NewAssetService(
	db *sql.DB,
	assetRepo *repository.AssetRepository,
	rateRepo *repository.InterestRateRepository,
) *AssetService {
	return &AssetService{
		db:        db,
		assetRepo: assetRepo,
		rateRepo:  rateRepo,
		now:       time.Now,
	}
}

// GetAssets retrieves every asset, ordered by name.
func (s *AssetService) GetAssets(ctx context.Context) ([]model.Asset, error) {
	return s.assetRepo.GetAssets(ctx)
}

// GetAsset retrieves a single asset.
// Returns apperrors.ErrAssetNotFound if it does not exist.
func (s *AssetService) GetAsset(ctx context.Context, id string) (model.Asset, error) {
	return s.assetRepo.GetAsset(ctx, id)
}

// CreateAsset stores a new asset from a validated request.
// The symbol and ISIN are upper-cased.
func (s *AssetService) CreateAsset(ctx context.Context, req request.CreateAssetRequest) (model.Asset, error) {
	now := s.now().UTC()
	asset := model.Asset{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Symbol:    strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Isin:      strings.ToUpper(strings.TrimSpace(req.Isin)),
		Type:      model.AssetType(req.Type),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.assetRepo.InsertAsset(ctx, asset); err != nil {
		return model.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// RenameAsset changes an asset's name, the only field that may change after creation.
// Returns apperrors.ErrAssetNotFound if it does not exist.
func (s *AssetService) RenameAsset(ctx context.Context, id string, req request.UpdateAssetRequest) (model.Asset, error) {
	if err := s.assetRepo.UpdateAssetName(ctx, id, strings.TrimSpace(*req.Name), s.now().UTC()); err != nil {
		return model.Asset{}, err
	}
	return s.assetRepo.GetAsset(ctx, id)
}

// GetInterestRates returns the rate history of an asset, oldest first.
// Returns apperrors.ErrAssetNotFound if the asset does not exist.
func (s *AssetService) GetInterestRates(ctx context.Context, assetID string) ([]model.InterestRate, error) {
	if _, err := s.assetRepo.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}
	return s.rateRepo.GetInterestRateHistory(ctx, assetID)
}

// AddInterestRate starts a new rate interval on a savings asset.
//
// The asset's open interval, if any, is closed on the new start date so the
// history stays contiguous. Both writes happen in one database transaction.
//
// Returns:
//   - apperrors.ErrAssetNotFound if the asset does not exist
//   - apperrors.ErrNotSavingsAsset if the asset is not a savings account
//   - apperrors.ErrInvalidDateRange if the start date is not after the latest interval's start
func (s *AssetService) AddInterestRate(ctx context.Context, assetID string, req request.CreateInterestRateRequest) (model.InterestRate, error) {
	asset, err := s.assetRepo.GetAsset(ctx, assetID)
	if err != nil {
		return model.InterestRate{}, err
	}
	if asset.Type != model.AssetTypeSavings {
		return model.InterestRate{}, apperrors.ErrNotSavingsAsset
	}

	startDate, err := validation.ParseDate(req.StartDate)
	if err != nil {
		return model.InterestRate{}, err
	}

	now := s.now().UTC()
	rate := model.InterestRate{
		ID:        uuid.New().String(),
		AssetID:   assetID,
		Rate:      *req.Rate,
		StartDate: startDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.InterestRate{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	rateRepo := s.rateRepo.WithTx(tx)

	history, err := rateRepo.GetInterestRateHistory(ctx, assetID)
	if err != nil {
		return model.InterestRate{}, err
	}
	if n := len(history); n > 0 && !startDate.After(history[n-1].StartDate) {
		return model.InterestRate{}, fmt.Errorf("%w: start date must be after %s",
			apperrors.ErrInvalidDateRange, history[n-1].StartDate.Format(validation.DateLayout))
	}

	if err := rateRepo.CloseOpenInterval(ctx, assetID, startDate, now); err != nil {
		return model.InterestRate{}, err
	}
	if err := rateRepo.InsertInterestRate(ctx, rate); err != nil {
		return model.InterestRate{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.InterestRate{}, fmt.Errorf("failed to commit interest rate: %w", err)
	}

	return rate, nil
}
