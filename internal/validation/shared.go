package validation

import (
	"fmt"
	"strings"
	"time"
)

// Error carries per-field validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// DateLayout is the accepted format of civil dates in requests.
const DateLayout = "2006-01-02"

// ParseDate parses a civil date in YYYY-MM-DD format as midnight UTC.
func ParseDate(str string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(str))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return t, nil
}
