// Package dates handles the calendar-date strings ("2006-01-02") used on
// entity fields. Dates travel as strings end to end; parsing happens only
// where a derivation needs ordering, and unparseable values are reported via
// the ok result so callers can exclude the record instead of failing.
package dates

import (
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Format renders t as a calendar-date string.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today is the current calendar date as a string.
func Today() string {
	return Format(time.Now())
}

// Parse reads a calendar-date string. ok is false for empty or unparseable
// input.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InRange reports whether the date string falls in [start, end] inclusive.
// Missing or unparseable dates are out of range by definition.
func InRange(s string, start, end time.Time) bool {
	t, ok := Parse(s)
	if !ok {
		return false
	}
	return !t.Before(start) && !t.After(end)
}
