package handlers

import (
	"net/http"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/response"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/service"
)

// DashboardHandler serves the computed dashboard views.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard handles GET requests for the whole dashboard: totals, categories,
// value history and the enriched assets.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with Dashboard
// Error: 500 Internal Server Error if any asset cannot be valued
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.Load(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dashboard)
}

// Summary handles GET requests for the portfolio totals.
//
// Endpoint: GET /api/dashboard/summary
// Response: 200 OK with PortfolioMetrics
// Error: 500 Internal Server Error if any asset cannot be valued
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Categories handles GET requests for the holdings grouped by asset type.
//
// Endpoint: GET /api/dashboard/categories
// Response: 200 OK with array of Category, always etf, crypto, savings
// Error: 500 Internal Server Error if any asset cannot be valued
func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.dashboardService.Categories(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, categories)
}

// History handles GET requests for the daily value series.
//
// Endpoint: GET /api/dashboard/history?range=
// Query: range is one of 7d, 1m, 3m, 6m, 1y, all (default all)
// Response: 200 OK with array of chart points {"date": "dd/mm/yyyy", "<asset name>": value}
// Error: 400 Bad Request for an unknown range
// Error: 500 Internal Server Error if any asset cannot be valued
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	points, err := h.dashboardService.History(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToBuildDashboard)
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}
