// Date normalization and formatting helpers for the expiry package.
//
// Add accepts dates from loosely typed clients: a plain "YYYY-MM-DD", an
// ISO datetime ("2025-01-02T00:00:00" or "2025-01-02 00:00:00"), or a
// count of days from today. NormalizeDate reduces the string forms to the
// canonical calendar date; FromDays handles the counted form.
package expiry

import (
	"strings"
	"time"
)

// DateLayout is the canonical wire and storage form of a calendar date.
const DateLayout = "2006-01-02"

// displayLayout is the human-facing form used in choice labels and cards.
const displayLayout = "2006/01/02"

// ParseDate parses a canonical "YYYY-MM-DD" string. The boolean is false
// for blank or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// NormalizeDate reduces a raw date input to its canonical "YYYY-MM-DD"
// form. Trailing time components are truncated: everything after the first
// 'T' or space is discarded before validation. The boolean is false when
// the remaining date portion does not parse.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if _, ok := ParseDate(s); !ok {
		return "", false
	}
	return s, true
}

// FromDays returns the canonical date n days after today. Callers validate
// n >= 1 before conversion; FromDays itself accepts any offset.
func FromDays(n int, today time.Time) string {
	return truncateToDay(today).AddDate(0, 0, n).Format(DateLayout)
}

// FormatDisplay renders a canonical date as "YYYY/MM/DD" for labels and
// cards. Malformed input is returned unchanged, matching the fail-safe
// behavior of classification.
func FormatDisplay(dateStr string) string {
	d, ok := ParseDate(dateStr)
	if !ok {
		return dateStr
	}
	return d.Format(displayLayout)
}
