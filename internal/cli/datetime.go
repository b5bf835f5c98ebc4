package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDate parses:
// - YYYY-MM-DD (date-only, midnight UTC)
// - RFC3339 / RFC3339Nano (timezone-aware)
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if reDateOnly.MatchString(s) {
		return time.Parse("2006-01-02", s)
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.UTC(), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", s)
}

// dateFlag resolves an optional --due/--start style flag value. The empty
// string means the flag was not set.
func dateFlag(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
