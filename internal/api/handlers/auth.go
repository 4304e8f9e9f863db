package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/response"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/auth"
)

// AuthHandler handles the password login.
type AuthHandler struct {
	auth *auth.Authenticator
	log  zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authenticator *auth.Authenticator, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth: authenticator,
		log:  log,
	}
}

// AuthStatusResponse reports whether the caller holds a valid session.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Login handles POST requests carrying the dashboard password.
// On success the session cookie is set.
//
// Endpoint: POST /api/auth/login
// Request Body: LoginRequest (password)
// Response: 200 OK with {"success": true}
// Error: 400 Bad Request if the body is invalid
// Error: 401 Unauthorized if the password is wrong
// Error: 500 Internal Server Error if no password is configured
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.auth.CheckPassword(req.Password); err != nil {
		if errors.Is(err, apperrors.ErrAuthNotConfigured) {
			h.log.Error().Msg("login attempted but DASHBOARD_PASSWORD is not set")
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrAuthNotConfigured.Error(), nil)
			return
		}
		h.log.Warn().Str("remote", r.RemoteAddr).Msg("failed login")
		response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidPassword.Error(), nil)
		return
	}

	token, err := h.auth.IssueToken()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	http.SetCookie(w, h.auth.SessionCookie(token))
	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout clears the session cookie.
//
// Endpoint: POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, h.auth.ClearCookie())
	w.WriteHeader(http.StatusNoContent)
}

// Status reports whether the request carries a valid session.
//
// Endpoint: GET /api/auth/status
// Response: 200 OK with AuthStatusResponse
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, AuthStatusResponse{Authenticated: h.auth.Authenticated(r)})
}
