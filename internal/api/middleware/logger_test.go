package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/middleware"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/asset/x%0Aforged", nil)
	w := httptest.NewRecorder()
	middleware.Logger(log)(next).ServeHTTP(w, req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one log line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("Log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("Expected warn level for 404, got %v", entry["level"])
	}
	if entry["status"] != float64(http.StatusNotFound) || entry["method"] != http.MethodGet {
		t.Errorf("Unexpected log entry: %v", entry)
	}
}
