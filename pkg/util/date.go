package util

import (
	"math"
	"time"
)

// DateLayout is the calendar-date format used across the API and storage.
const DateLayout = "2006-01-02"

// ParseDate parses a 2006-01-02 calendar date. Returns (t, true) if it worked.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WeekStart returns the Monday on or before d, truncated to midnight.
// Sunday counts as ISO weekday 7, so it maps to the preceding Monday.
func WeekStart(d time.Time) time.Time {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	d = d.AddDate(0, 0, -(wd - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// MonthStart returns the first day of d's month, truncated to midnight.
func MonthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// Round rounds v half-away-from-zero to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Round(v*m) / m
}
