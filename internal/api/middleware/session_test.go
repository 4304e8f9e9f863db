package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/response"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/auth"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/testutil"
)

// TestRequireSession tests the session gate.
//
// WHY: Every data route sits behind this middleware. A request without a valid
// session must never reach a handler.
func TestRequireSession(t *testing.T) {
	authenticator, err := auth.New(auth.Config{Password: "secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("auth.New() returned unexpected error: %v", err)
	}
	token, err := authenticator.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken() returned unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{name: "rejects request without cookie", wantStatus: http.StatusUnauthorized},
		{name: "rejects forged cookie", cookie: &http.Cookie{Name: auth.CookieName, Value: "forged"}, wantStatus: http.StatusUnauthorized},
		{name: "allows valid session", cookie: authenticator.SessionCookie(token), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			middleware.RequireSession(authenticator)(next).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d", tt.wantStatus, w.Code)
			}
			if handlerCalled != (tt.wantStatus == http.StatusOK) {
				t.Errorf("Unexpected handler call state: %v", handlerCalled)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				var body response.ErrorResponse
				testutil.DecodeJSON(t, w, &body)
				if body.Error != "unauthorized" {
					t.Errorf("Expected 'unauthorized' error, got %q", body.Error)
				}
			}
		})
	}
}
