package calendar

import (
	"math"
	"time"
)

// =============================================================================
// DATE-TIME ADAPTER - Truncation, arithmetic, comparison helpers
// =============================================================================
// All truncation keeps the instant's own location; the package performs
// no timezone conversion. End-of-unit values sit one nanosecond before
// the next unit's start so inclusive boundary comparisons hold.

func startOfMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func endOfYear(t time.Time) time.Time {
	return startOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// startOfWeek truncates to the most recent weekStart at midnight.
func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	d := startOfDay(t)
	back := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -back)
}

func endOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return startOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// isWeekend reports Saturday or Sunday regardless of the configured
// first day of week.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// daysBetween counts whole days from a to b. Both arguments are
// expected at day granularity; rounding absorbs DST-shortened days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// minutesBetween counts whole minutes from a to b, truncated toward zero.
func minutesBetween(a, b time.Time) int64 {
	return int64(b.Sub(a) / time.Minute)
}
