package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/testutil"
)

// TestDeriveAmounts tests completion of the amount triple.
//
// WHY: Users enter whichever two figures their broker statement shows. The third
// must be derived without float drift, and a contradicting triple must be refused
// rather than silently corrupting the cost basis.
func TestDeriveAmounts(t *testing.T) {
	tests := []struct {
		name                 string
		quantity, price, sum *float64
		wantQ, wantP, wantT  float64
		wantErr              error
		wantAnyErr           bool
	}{
		{name: "total from quantity and price", quantity: ptr(3.0), price: ptr(0.1), wantQ: 3, wantP: 0.1, wantT: 0.3},
		{name: "price from quantity and total", quantity: ptr(3.0), sum: ptr(100.0), wantQ: 3, wantP: 33.33333333, wantT: 100},
		{name: "quantity from price and total", price: ptr(40000.0), sum: ptr(1000.0), wantQ: 0.025, wantP: 40000, wantT: 1000},
		{name: "all three consistent", quantity: ptr(10.0), price: ptr(100.0), sum: ptr(1000.005), wantQ: 10, wantP: 100, wantT: 1000.005},
		{name: "all three inconsistent", quantity: ptr(10.0), price: ptr(100.0), sum: ptr(1001.0), wantErr: apperrors.ErrAmountMismatch},
		{name: "only one value", quantity: ptr(10.0), wantAnyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, p, total, err := service.DeriveAmounts(tt.quantity, tt.price, tt.sum)

			if tt.wantErr != nil || tt.wantAnyErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeriveAmounts() returned unexpected error: %v", err)
			}
			if q != tt.wantQ || p != tt.wantP || total != tt.wantT {
				t.Errorf("Got (%v, %v, %v), want (%v, %v, %v)", q, p, total, tt.wantQ, tt.wantP, tt.wantT)
			}
		})
	}
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the transaction with the derived amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		asset := testutil.NewAsset().WithName("Bitcoin").WithSymbol("BTC").Crypto().Build(t, db)

		created, err := svc.CreateTransaction(ctx, request.CreateTransactionRequest{
			AssetID:         asset.ID,
			Type:            "buy",
			Quantity:        ptr(0.5),
			PricePerUnit:    ptr(40000.0),
			TransactionDate: "2024-02-10",
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}
		if created.TotalAmount != 20000 {
			t.Errorf("Expected total 20000, got %v", created.TotalAmount)
		}
		if created.AssetName != "Bitcoin" || created.AssetType != model.AssetTypeCrypto {
			t.Errorf("Expected asset details on response, got %+v", created)
		}

		stored, err := svc.GetTransaction(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetTransaction() returned unexpected error: %v", err)
		}
		if !stored.TransactionDate.Equal(testutil.Day(2024, time.February, 10)) {
			t.Errorf("Expected date 2024-02-10, got %v", stored.TransactionDate)
		}
		if math.Abs(stored.Quantity-0.5) > 1e-12 || stored.Type != model.TransactionTypeBuy {
			t.Errorf("Stored transaction does not match: %+v", stored)
		}
	})

	t.Run("rejects an unknown asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(ctx, request.CreateTransactionRequest{
			AssetID:         testutil.MakeID(),
			Type:            "buy",
			Quantity:        ptr(1.0),
			PricePerUnit:    ptr(1.0),
			TransactionDate: "2024-02-10",
		})
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("rejects mismatching amounts without storing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		asset := testutil.NewAsset().Build(t, db)

		_, err := svc.CreateTransaction(ctx, request.CreateTransactionRequest{
			AssetID:         asset.ID,
			Type:            "buy",
			Quantity:        ptr(10.0),
			PricePerUnit:    ptr(100.0),
			TotalAmount:     ptr(900.0),
			TransactionDate: "2024-02-10",
		})
		if !errors.Is(err, apperrors.ErrAmountMismatch) {
			t.Fatalf("Expected ErrAmountMismatch, got %v", err)
		}
		if n := testutil.CountRows(t, db, "transactions"); n != 0 {
			t.Errorf("Expected no stored transactions, got %d", n)
		}
	})
}

func TestTransactionService_GetTransactions(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestTransactionService(t, db)
	etf := testutil.NewAsset().Build(t, db)
	btc := testutil.NewAsset().Crypto().Build(t, db)
	testutil.CreateBuy(t, db, etf.ID, 10, 100, testutil.Day(2024, time.January, 1))
	testutil.CreateBuy(t, db, btc.ID, 1, 40000, testutil.Day(2024, time.March, 1))
	testutil.CreateSell(t, db, etf.ID, 2, 110, testutil.Day(2024, time.February, 1))

	t.Run("returns the whole ledger most recent first", func(t *testing.T) {
		txs, err := svc.GetTransactions(ctx, "")
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(txs) != 3 {
			t.Fatalf("Expected 3 transactions, got %d", len(txs))
		}
		if txs[0].AssetID != btc.ID {
			t.Errorf("Expected most recent transaction first, got %+v", txs[0])
		}
	})

	t.Run("filters by asset", func(t *testing.T) {
		txs, err := svc.GetTransactions(ctx, etf.ID)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(txs) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(txs))
		}
	})

	t.Run("returns not found for unknown transaction", func(t *testing.T) {
		_, err := svc.GetTransaction(ctx, testutil.MakeID())
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}
