// Package auth gates the dashboard behind a single shared password.
//
// A successful login yields a fernet token carried in an HttpOnly cookie. The
// token is self-contained: validity and expiry are checked with the session key
// alone, so there is no server-side session store.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/apperrors"
)

// CookieName is the name of the session cookie.
const CookieName = "auth"

// sessionPayload is the plaintext sealed inside every token.
const sessionPayload = "wealth-dashboard-session"

// Config holds the password and session settings.
type Config struct {
	// Password is the shared dashboard password. Empty disables login.
	Password string
	// SessionKey is a base64 fernet key. Empty generates a key, which invalidates
	// sessions on restart.
	SessionKey string
	TTL        time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// Authenticator checks passwords and issues and verifies session tokens.
type Authenticator struct {
	passwordHash []byte
	keys         []*fernet.Key
	ttl          time.Duration
	secure       bool
}

// New creates an Authenticator. It fails only on a malformed session key.
func New(cfg Config) (*Authenticator, error) {
	var key fernet.Key
	if cfg.SessionKey == "" {
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
	} else {
		k, err := fernet.DecodeKey(cfg.SessionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode session key: %w", err)
		}
		key = *k
	}

	a := &Authenticator{
		keys:   []*fernet.Key{&key},
		ttl:    cfg.TTL,
		secure: cfg.Secure,
	}
	if cfg.Password != "" {
		sum := sha256.Sum256([]byte(cfg.Password))
		a.passwordHash = sum[:]
	}
	return a, nil
}

// Configured reports whether a password has been set.
func (a *Authenticator) Configured() bool {
	return a.passwordHash != nil
}

// CheckPassword compares password with the configured one in constant time.
//
// Returns:
//   - apperrors.ErrAuthNotConfigured if no password is configured
//   - apperrors.ErrInvalidPassword if the password is wrong
func (a *Authenticator) CheckPassword(password string) error {
	if !a.Configured() {
		return apperrors.ErrAuthNotConfigured
	}
	sum := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(sum[:], a.passwordHash) != 1 {
		return apperrors.ErrInvalidPassword
	}
	return nil
}

// IssueToken seals a new session token.
func (a *Authenticator) IssueToken() (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(sessionPayload), a.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return string(tok), nil
}

// VerifyToken checks a token's signature and age.
// Returns apperrors.ErrInvalidSession for a tampered, foreign or expired token.
func (a *Authenticator) VerifyToken(token string) error {
	if token == "" {
		return apperrors.ErrInvalidSession
	}
	msg := fernet.VerifyAndDecrypt([]byte(token), a.ttl, a.keys)
	if msg == nil || subtle.ConstantTimeCompare(msg, []byte(sessionPayload)) != 1 {
		return apperrors.ErrInvalidSession
	}
	return nil
}

// SessionCookie wraps a token in the session cookie.
func (a *Authenticator) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.ttl.Seconds()),
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie returns a cookie that removes the session cookie.
func (a *Authenticator) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// Authenticated reports whether the request carries a valid session cookie.
func (a *Authenticator) Authenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return a.VerifyToken(c.Value) == nil
}
