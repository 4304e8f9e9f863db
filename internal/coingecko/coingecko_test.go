package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCoinID(t *testing.T) {
	tests := map[string]string{
		"BTC":       "bitcoin",
		"btc":       "bitcoin",
		"ETH":       "ethereum",
		"pepe":      "pepe",
		"Some-Coin": "some-coin",
		" SOL ":     "solana",
	}
	for symbol, want := range tests {
		if got := CoinID(symbol); got != want {
			t.Errorf("CoinID(%q) = %q, want %q", symbol, got, want)
		}
	}
}

func TestSimplePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("ids") != "bitcoin" || r.URL.Query().Get("vs_currencies") != "eur" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"bitcoin":{"eur":61234.5,"eur_24h_change":-1.25,"eur_24h_vol":1000000}}`))
	}))
	defer server.Close()

	p, err := NewClient(server.URL, "EUR", 0).SimplePrice(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("SimplePrice() failed: %v", err)
	}
	if p.Price != 61234.5 {
		t.Errorf("Price = %v", p.Price)
	}
	if p.Change24h == nil || *p.Change24h != -1.25 {
		t.Errorf("Change24h = %v", p.Change24h)
	}
}

func TestSimplePrice_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"rate limited", http.StatusTooManyRequests, ``},
		{"server error", http.StatusInternalServerError, ``},
		{"unknown coin", http.StatusOK, `{}`},
		{"missing currency", http.StatusOK, `{"bitcoin":{"usd":1}}`},
		{"garbage", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			if _, err := NewClient(server.URL, "eur", 0).SimplePrice(context.Background(), "bitcoin"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
