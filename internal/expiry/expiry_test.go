package expiry

import (
	"testing"
	"time"
)

// fixed "today" for deterministic classification
var today = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func dateOffset(days int) string {
	return today.AddDate(0, 0, days).Format(DateLayout)
}

func TestClassify_Precedence(t *testing.T) {
	// A date equal to today satisfies the raw 0..7 predicate too, but must
	// classify as expiring-today, never soon or expired.
	got := Classify(dateOffset(0), today)
	if got != StatusExpiringToday {
		t.Fatalf("Classify(today) = %v; want StatusExpiringToday", got)
	}
	if !WithinDays(dateOffset(0), today, SoonWindowDays) {
		t.Fatalf("WithinDays(today, 7) = false; want true (raw predicate overlaps)")
	}
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		date string
		want Status
	}{
		{"yesterday", dateOffset(-1), StatusExpired},
		{"long expired", dateOffset(-400), StatusExpired},
		{"today", dateOffset(0), StatusExpiringToday},
		{"tomorrow", dateOffset(1), StatusExpiringSoon},
		{"window edge", dateOffset(7), StatusExpiringSoon},
		{"past window", dateOffset(8), StatusNormal},
		{"far future", dateOffset(120), StatusNormal},
		{"blank", "", StatusNormal},
		{"garbage", "not-a-date", StatusNormal},
		{"wrong layout", "15/03/2025", StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.date, today); got != tc.want {
				t.Fatalf("Classify(%q) = %v; want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// Late-evening "today" must classify the same as a morning one.
	evening := time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC)
	if got := Classify("2025-03-15", evening); got != StatusExpiringToday {
		t.Fatalf("Classify at 23:59 = %v; want StatusExpiringToday", got)
	}
	if got := Classify("2025-03-16", evening); got != StatusExpiringSoon {
		t.Fatalf("Classify(tomorrow) at 23:59 = %v; want StatusExpiringSoon", got)
	}
}

func TestIsExpired_FailSafe(t *testing.T) {
	if IsExpired("garbled", today) {
		t.Fatal("IsExpired(garbled) = true; want false (fail-safe)")
	}
	if !IsExpired(dateOffset(-1), today) {
		t.Fatal("IsExpired(yesterday) = false; want true")
	}
	if IsExpired(dateOffset(0), today) {
		t.Fatal("IsExpired(today) = true; want false (today is still usable)")
	}
}

func TestStatus_Tag(t *testing.T) {
	cases := map[Status]string{
		StatusExpired:       " [已過期]",
		StatusExpiringToday: " [今天到期]",
		StatusExpiringSoon:  " [即將到期]",
		StatusNormal:        "",
	}
	for s, want := range cases {
		if got := s.Tag(); got != want {
			t.Fatalf("Tag(%v) = %q; want %q", s, got, want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-03-20", "2025-03-20", true},
		{"  2025-03-20  ", "2025-03-20", true},
		{"2025-03-20T08:15:00", "2025-03-20", true},
		{"2025-03-20 08:15:00", "2025-03-20", true},
		{"2025-03-20T08:15:00+08:00", "2025-03-20", true},
		{"", "", false},
		{"2025/03/20", "", false},
		{"2025-13-40", "", false},
		{"T2025-03-20", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeDate(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("NormalizeDate(%q) = (%q, %v); want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFromDays(t *testing.T) {
	if got := FromDays(10, today); got != "2025-03-25" {
		t.Fatalf("FromDays(10) = %q; want 2025-03-25", got)
	}
	// Month rollover.
	if got := FromDays(20, today); got != "2025-04-04" {
		t.Fatalf("FromDays(20) = %q; want 2025-04-04", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	if got := FormatDisplay("2025-03-20"); got != "2025/03/20" {
		t.Fatalf("FormatDisplay = %q; want 2025/03/20", got)
	}
	// Malformed input passes through unchanged.
	if got := FormatDisplay("whenever"); got != "whenever" {
		t.Fatalf("FormatDisplay(malformed) = %q; want passthrough", got)
	}
}
