package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/response"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/validation"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/valuation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
	location           *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. loc decides which
// civil date counts as today when rejecting future-dated transactions.
func NewTransactionHandler(transactionService *service.TransactionService, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionHandler{
		transactionService: transactionService,
		location:           loc,
	}
}

// Transactions handles GET requests to list the ledger, most recent first.
// An optional assetId query parameter restricts the list to one asset.
//
// Endpoint: GET /api/transaction?assetId=
// Response: 200 OK with array of TransactionResponse
// Error: 400 Bad Request if assetId is not a UUID
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	assetID := r.URL.Query().Get("assetId")
	if assetID != "" {
		if err := validation.ValidateUUID(assetID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
			return
		}
	}

	transactions, err := h.transactionService.GetTransactions(r.Context(), assetID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with TransactionResponse
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.transactionService.GetTransaction(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransaction)
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a buy or sell.
// Any two of quantity, pricePerUnit and totalAmount are required; the third is derived.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (assetId, type, quantity, pricePerUnit, totalAmount, transactionDate)
// Response: 201 Created with TransactionResponse
// Error: 400 Bad Request if validation fails, the amounts disagree or request body is invalid
// Error: 404 Not Found if the asset does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req, valuation.Today(time.Now(), h.location)); err != nil {
		respondValidationError(w, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateTransaction)
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}
