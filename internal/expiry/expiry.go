// Package expiry implements the pure date classification at the heart of
// the deposit tracker: given a deposit's expiry date and an explicit
// "today", it decides whether the deposit is expired, expiring today,
// expiring soon, or normal.
//
// The package has no clock access of its own; callers pass "today" so the
// classification is deterministic and independently testable. Unparsable
// dates never raise: every predicate fails safe to false and Classify
// returns StatusNormal, so stale or historically malformed records cannot
// break listing or statistics.
package expiry

import "time"

// SoonWindowDays is the size of the "expiring soon" window: a deposit due
// within 1..SoonWindowDays days (inclusive) from today counts as soon.
const SoonWindowDays = 7

// Status is the mutually exclusive time-based state of a deposit.
type Status int

const (
	// StatusNormal covers dates more than SoonWindowDays out and any date
	// that cannot be parsed.
	StatusNormal Status = iota
	// StatusExpiringSoon covers dates 1..SoonWindowDays days in the future.
	StatusExpiringSoon
	// StatusExpiringToday covers a date equal to today.
	StatusExpiringToday
	// StatusExpired covers dates strictly before today.
	StatusExpired
)

// String returns a machine-friendly name for the status.
func (s Status) String() string {
	switch s {
	case StatusExpired:
		return "expired"
	case StatusExpiringToday:
		return "expiring_today"
	case StatusExpiringSoon:
		return "expiring_soon"
	default:
		return "normal"
	}
}

// Tag returns the display tag appended to choice labels: [已過期],
// [今天到期], [即將到期], or "" for normal records.
func (s Status) Tag() string {
	switch s {
	case StatusExpired:
		return " [已過期]"
	case StatusExpiringToday:
		return " [今天到期]"
	case StatusExpiringSoon:
		return " [即將到期]"
	default:
		return ""
	}
}

// Classify maps an expiry date string ("YYYY-MM-DD") and today to exactly
// one Status.
//
// Precedence is Expired > ExpiringToday > ExpiringSoon > Normal. The raw
// "within the soon window" predicate (WithinDays) also holds at day offset
// zero, but today is always checked first, so a deposit due today is never
// reported as merely "soon".
func Classify(dateStr string, today time.Time) Status {
	d, ok := ParseDate(dateStr)
	if !ok {
		return StatusNormal
	}
	switch offset := daysBetween(truncateToDay(today), d); {
	case offset < 0:
		return StatusExpired
	case offset == 0:
		return StatusExpiringToday
	case offset <= SoonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusNormal
	}
}

// IsExpired reports whether the date is strictly before today. Unparsable
// dates are not expired.
func IsExpired(dateStr string, today time.Time) bool {
	return Classify(dateStr, today) == StatusExpired
}

// WithinDays reports whether the date falls 0..n days from today,
// inclusive on both ends. This is the raw overlapping "soon" predicate;
// display and statistics code should prefer Classify, which resolves the
// day-zero overlap in favor of StatusExpiringToday.
func WithinDays(dateStr string, today time.Time, n int) bool {
	d, ok := ParseDate(dateStr)
	if !ok {
		return false
	}
	offset := daysBetween(truncateToDay(today), d)
	return offset >= 0 && offset <= n
}

// daysBetween returns the whole-day offset from a to b. Both arguments are
// expected to be midnight-truncated in the same location.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// truncateToDay drops the time-of-day component, keeping the calendar date
// in the value's own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
