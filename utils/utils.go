package utils

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted formats for caller-supplied dates, tried in
// order: full RFC3339, timestamp without zone, plain calendar date.
var dateLayouts = []string{
	time.RFC3339,          // 2024-01-05T00:00:00+05:30
	"2006-01-02T15:04:05", // 2024-01-05T00:00:00
	"2006-01-02",          // 2024-01-05
}

// ParseDate parses a caller-supplied date string. An empty string is not a
// valid date; callers decide themselves whether the field is optional.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", value)
}
