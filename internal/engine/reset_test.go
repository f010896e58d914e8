package engine

import (
	"testing"
	"time"
)

func TestShouldResetNeverReset(t *testing.T) {
	for _, now := range []time.Time{
		{},
		testNow,
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.Local),
	} {
		if !ShouldReset(nil, now) {
			t.Fatalf("ShouldReset(nil, %v)=false, want true", now)
		}
	}
}

func TestShouldResetCalendarDates(t *testing.T) {
	at := func(y int, m time.Month, d, h, min int) time.Time {
		return time.Date(y, m, d, h, min, 0, 0, time.UTC)
	}
	cases := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{"same instant", at(2026, 10, 15, 9, 0), at(2026, 10, 15, 9, 0), false},
		{"same day morning to night", at(2026, 10, 15, 0, 0), at(2026, 10, 15, 23, 59), false},
		{"minutes across midnight", at(2026, 10, 15, 23, 58), at(2026, 10, 16, 0, 1), true},
		{"same day next month", at(2026, 9, 15, 9, 0), at(2026, 10, 15, 9, 0), true},
		{"same day next year", at(2025, 10, 15, 9, 0), at(2026, 10, 15, 9, 0), true},
		{"yesterday", at(2026, 10, 14, 12, 0), at(2026, 10, 15, 12, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			last := tc.last
			if got := ShouldReset(&last, tc.now); got != tc.want {
				t.Fatalf("ShouldReset=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestShouldResetUsesNowLocation(t *testing.T) {
	// 22:00 UTC on the 15th is already the 16th in UTC+3.
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	last := time.Date(2026, 10, 15, 22, 0, 0, 0, time.UTC)

	if ShouldReset(&last, time.Date(2026, 10, 16, 8, 0, 0, 0, plus3)) {
		t.Fatalf("expected no reset: both on the 16th in UTC+3")
	}
	if !ShouldReset(&last, time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected reset: 15th vs 16th in UTC")
	}
}
