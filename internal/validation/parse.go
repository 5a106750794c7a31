package validation

import (
	"strings"
	"time"
)

// ParseAmount parses a decimal money string, tolerating thousands
// separators. Used by callers that need a numeric reading before full
// validation runs.
func ParseAmount(s string) (float64, bool) {
	return parseAmount(s)
}

// ParseDate parses an ISO-8601 date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
