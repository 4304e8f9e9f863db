package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/testutil"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	setup := func(t *testing.T) (*TransactionHandler, model.Asset) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		asset := testutil.NewAsset().Build(t, db)
		return NewTransactionHandler(testutil.NewTestTransactionService(t, db), time.UTC), asset
	}

	post := func(t *testing.T, handler *TransactionHandler, body map[string]any) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", body, nil)
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)
		return w
	}

	t.Run("derives the missing amount", func(t *testing.T) {
		handler, asset := setup(t)

		w := post(t, handler, map[string]any{
			"assetId":         asset.ID,
			"type":            "buy",
			"quantity":        4,
			"totalAmount":     1000,
			"transactionDate": "2024-03-15",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var tx model.TransactionResponse
		testutil.DecodeJSON(t, w, &tx)
		if tx.PricePerUnit != 250 {
			t.Errorf("Expected price per unit 250, got %v", tx.PricePerUnit)
		}
	})

	t.Run("returns 500 with create message when storage fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		asset := testutil.NewAsset().Build(t, db)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db), time.UTC)
		db.Close()

		w := post(t, handler, map[string]any{
			"assetId":         asset.ID,
			"type":            "buy",
			"quantity":        1,
			"pricePerUnit":    100,
			"transactionDate": "2024-03-15",
		})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), apperrors.ErrFailedToCreateTransaction.Error()) {
			t.Errorf("Expected create failure message, got %s", w.Body.String())
		}
	})

	t.Run("returns 400 for mismatching amounts", func(t *testing.T) {
		handler, asset := setup(t)

		w := post(t, handler, map[string]any{
			"assetId":         asset.ID,
			"type":            "buy",
			"quantity":        4,
			"pricePerUnit":    250,
			"totalAmount":     999,
			"transactionDate": "2024-03-15",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for a future date", func(t *testing.T) {
		handler, asset := setup(t)

		w := post(t, handler, map[string]any{
			"assetId":         asset.ID,
			"type":            "sell",
			"quantity":        1,
			"pricePerUnit":    1,
			"transactionDate": time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		handler, _ := setup(t)

		w := post(t, handler, map[string]any{
			"assetId":         testutil.MakeID(),
			"type":            "buy",
			"quantity":        1,
			"pricePerUnit":    1,
			"transactionDate": "2024-03-15",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db), time.UTC)
	asset := testutil.NewAsset().Build(t, db)
	other := testutil.NewAsset().Crypto().Build(t, db)
	tx := testutil.CreateBuy(t, db, asset.ID, 1, 100, testutil.Day(2024, time.January, 1))
	testutil.CreateBuy(t, db, other.ID, 1, 100, testutil.Day(2024, time.January, 2))

	t.Run("lists all transactions", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Transactions(w, httptest.NewRequest(http.MethodGet, "/api/transaction", nil))

		var txs []model.TransactionResponse
		testutil.DecodeJSON(t, w, &txs)
		if len(txs) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(txs))
		}
	})

	t.Run("filters by asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction", map[string]string{"assetId": asset.ID})
		handler.Transactions(w, req)

		var txs []model.TransactionResponse
		testutil.DecodeJSON(t, w, &txs)
		if len(txs) != 1 || txs[0].ID != tx.ID {
			t.Errorf("Expected only the asset's transaction, got %+v", txs)
		}
	})

	t.Run("rejects a malformed asset filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction", map[string]string{"assetId": "nope"})
		handler.Transactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("gets one transaction", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetTransaction(w, testutil.NewRequestWithURLParams(http.MethodGet, "/", map[string]string{"uuid": tx.ID}))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		var got model.TransactionResponse
		testutil.DecodeJSON(t, w, &got)
		if got.AssetName != asset.Name {
			t.Errorf("Expected asset name %q, got %q", asset.Name, got.AssetName)
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		w := httptest.NewRecorder()
		id := testutil.MakeID()
		handler.GetTransaction(w, testutil.NewRequestWithURLParams(http.MethodGet, "/", map[string]string{"uuid": id}))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
