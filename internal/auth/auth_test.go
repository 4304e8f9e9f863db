package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
)

func newTestAuthenticator(t *testing.T, password string, ttl time.Duration) *Authenticator {
	t.Helper()
	a, err := New(Config{Password: password, TTL: ttl})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	return a
}

func TestCheckPassword(t *testing.T) {
	a := newTestAuthenticator(t, "correct horse", time.Hour)

	if err := a.CheckPassword("correct horse"); err != nil {
		t.Errorf("Expected correct password to pass, got %v", err)
	}
	if err := a.CheckPassword("battery staple"); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Errorf("Expected ErrInvalidPassword, got %v", err)
	}
	if err := a.CheckPassword(""); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Errorf("Expected ErrInvalidPassword for empty password, got %v", err)
	}
}

// TestCheckPassword_NotConfigured tests the unset-password case.
//
// WHY: An empty configured password must never let an empty submission through.
func TestCheckPassword_NotConfigured(t *testing.T) {
	a := newTestAuthenticator(t, "", time.Hour)

	if a.Configured() {
		t.Error("Expected Configured() to be false")
	}
	if err := a.CheckPassword(""); !errors.Is(err, apperrors.ErrAuthNotConfigured) {
		t.Errorf("Expected ErrAuthNotConfigured, got %v", err)
	}
}

func TestTokens(t *testing.T) {
	t.Run("issued token verifies", func(t *testing.T) {
		a := newTestAuthenticator(t, "pw", time.Hour)
		tok, err := a.IssueToken()
		if err != nil {
			t.Fatalf("IssueToken() returned unexpected error: %v", err)
		}
		if err := a.VerifyToken(tok); err != nil {
			t.Errorf("Expected token to verify, got %v", err)
		}
	})

	t.Run("token from another key is rejected", func(t *testing.T) {
		a := newTestAuthenticator(t, "pw", time.Hour)
		other := newTestAuthenticator(t, "pw", time.Hour)
		tok, _ := other.IssueToken()

		if err := a.VerifyToken(tok); !errors.Is(err, apperrors.ErrInvalidSession) {
			t.Errorf("Expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("tampered and empty tokens are rejected", func(t *testing.T) {
		a := newTestAuthenticator(t, "pw", time.Hour)
		tok, _ := a.IssueToken()

		for _, bad := range []string{"", "garbage", tok[:len(tok)-4] + "AAAA"} {
			if err := a.VerifyToken(bad); !errors.Is(err, apperrors.ErrInvalidSession) {
				t.Errorf("Expected ErrInvalidSession for %q, got %v", bad, err)
			}
		}
	})

	t.Run("configured key survives restarts", func(t *testing.T) {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatal(err)
		}
		first, err := New(Config{Password: "pw", SessionKey: key.Encode(), TTL: time.Hour})
		if err != nil {
			t.Fatal(err)
		}
		second, err := New(Config{Password: "pw", SessionKey: key.Encode(), TTL: time.Hour})
		if err != nil {
			t.Fatal(err)
		}

		tok, _ := first.IssueToken()
		if err := second.VerifyToken(tok); err != nil {
			t.Errorf("Expected token to verify across instances, got %v", err)
		}
	})

	t.Run("malformed key is an error", func(t *testing.T) {
		if _, err := New(Config{SessionKey: "not-a-key"}); err == nil {
			t.Error("Expected an error for a malformed key")
		}
	})
}

func TestSessionCookie(t *testing.T) {
	a := newTestAuthenticator(t, "pw", 24*time.Hour)
	tok, _ := a.IssueToken()

	c := a.SessionCookie(tok)
	if c.Name != CookieName || !c.HttpOnly || c.SameSite != http.SameSiteStrictMode {
		t.Errorf("Unexpected cookie attributes: %+v", c)
	}
	if c.MaxAge != 86400 {
		t.Errorf("Expected MaxAge 86400, got %d", c.MaxAge)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	if !a.Authenticated(req) {
		t.Error("Expected request with session cookie to be authenticated")
	}

	if a.Authenticated(httptest.NewRequest(http.MethodGet, "/", nil)) {
		t.Error("Expected request without cookie to be unauthenticated")
	}

	if cleared := a.ClearCookie(); cleared.MaxAge >= 0 {
		t.Errorf("Expected clearing cookie to expire, got MaxAge %d", cleared.MaxAge)
	}
}
