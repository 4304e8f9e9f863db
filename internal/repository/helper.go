package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// dateLayout is how civil dates are stored.
const dateLayout = "2006-01-02"

// timeLayouts are tried in order by ParseTime. The last one is what sqlite's
// CURRENT_TIMESTAMP produces.
var timeLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseTime parses a date string in "2006-01-02", RFC3339 or sqlite timestamp format.
func ParseTime(str string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
}

// formatDate renders the civil date of t for storage.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatTimestamp renders an instant for storage.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
