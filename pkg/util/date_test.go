package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-10-07")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2024 || got.Month() != time.October || got.Day() != 7 {
		t.Fatalf("unexpected date %v", got)
	}
	if _, ok := ParseDate("07.10.2024"); ok {
		t.Fatalf("expected parse failure")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected empty failure")
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-10-07", "2024-10-07"}, // Monday maps to itself
		{"2024-10-09", "2024-10-07"}, // Wednesday
		{"2024-10-12", "2024-10-07"}, // Saturday
		{"2024-10-13", "2024-10-07"}, // Sunday belongs to the preceding Monday
		{"2024-10-14", "2024-10-14"}, // next Monday
	}
	for _, c := range cases {
		d, _ := ParseDate(c.in)
		if got := WeekStart(d).Format(DateLayout); got != c.want {
			t.Fatalf("WeekStart(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestMonthStart(t *testing.T) {
	d, _ := ParseDate("2024-02-29")
	if got := MonthStart(d).Format(DateLayout); got != "2024-02-01" {
		t.Fatalf("unexpected month start %s", got)
	}
	d, _ = ParseDate("2024-01-01")
	if got := MonthStart(d).Format(DateLayout); got != "2024-01-01" {
		t.Fatalf("first of month should map to itself, got %s", got)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{62.446, 2, 62.45},
		{62.444, 2, 62.44},
		{-2.5, 0, -3},
		{123456.7, 0, 123457},
	}
	for _, c := range cases {
		if got := Round(c.v, c.decimals); got != c.want {
			t.Fatalf("Round(%v, %d) = %v, want %v", c.v, c.decimals, got, c.want)
		}
	}
}
