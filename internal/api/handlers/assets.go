package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/response"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/validation"
)

// AssetHandler handles HTTP requests for asset and interest rate endpoints.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Assets handles GET requests to list every asset.
//
// Endpoint: GET /api/asset
// Response: 200 OK with array of Asset
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetService.GetAssets(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// GetAsset handles GET requests to retrieve a single asset by ID.
//
// Endpoint: GET /api/asset/{uuid}
// Response: 200 OK with Asset
// Error: 400 Bad Request if asset ID is invalid (validated by middleware)
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.assetService.GetAsset(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveAsset)
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset handles POST requests to create a new asset.
//
// Endpoint: POST /api/asset
// Request Body: CreateAssetRequest (name, symbol, isin, type)
// Response: 201 Created with Asset
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		respondValidationError(w, err)
		return
	}

	asset, err := h.assetService.CreateAsset(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset handles PUT requests to rename an asset.
//
// Endpoint: PUT /api/asset/{uuid}
// Request Body: UpdateAssetRequest (name)
// Response: 200 OK with updated Asset
// Error: 400 Bad Request if asset ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if update fails
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAsset(req); err != nil {
		respondValidationError(w, err)
		return
	}

	asset, err := h.assetService.RenameAsset(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveAsset)
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// InterestRates handles GET requests for the rate history of a savings asset.
//
// Endpoint: GET /api/asset/{uuid}/interest-rate
// Response: 200 OK with array of InterestRate, oldest first
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) InterestRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.assetService.GetInterestRates(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveRates)
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// CreateInterestRate handles POST requests starting a new rate on a savings asset.
// The asset's current open interval is closed on the new start date.
//
// Endpoint: POST /api/asset/{uuid}/interest-rate
// Request Body: CreateInterestRateRequest (rate, startDate)
// Response: 201 Created with InterestRate
// Error: 400 Bad Request if validation fails, the asset is not a savings account,
// or the start date does not follow the latest interval
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateInterestRate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInterestRateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInterestRate(req); err != nil {
		respondValidationError(w, err)
		return
	}

	rate, err := h.assetService.AddInterestRate(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveRates)
		return
	}

	response.RespondJSON(w, http.StatusCreated, rate)
}
