package middleware

import (
	"net/http"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/response"
)

// SessionVerifier decides whether a request carries a valid session.
type SessionVerifier interface {
	Authenticated(r *http.Request) bool
}

// RequireSession rejects requests without a valid session cookie with 401 Unauthorized.
//
// Example usage in router:
//
//	r.Group(func(r chi.Router) {
//	    r.Use(middleware.RequireSession(authenticator))
//	    r.Get("/dashboard", handler.Dashboard)
//	})
func RequireSession(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.Authenticated(r) {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Session is invalid or expired")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
