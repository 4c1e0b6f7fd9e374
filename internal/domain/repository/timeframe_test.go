package repository

import "testing"

func TestNormalizeTimeframe(t *testing.T) {
	tests := []struct {
		in   string
		want Timeframe
	}{
		{"", TFDaily},
		{"daily", TFDaily},
		{"Weekly", TFWeekly},
		{"MONTHLY", TFMonthly},
		{"hourly", Timeframe("HOURLY")},
	}
	for _, tt := range tests {
		if got := NormalizeTimeframe(tt.in); got != tt.want {
			t.Errorf("NormalizeTimeframe(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestIsValidTimeframe(t *testing.T) {
	for _, tf := range []Timeframe{TFDaily, TFWeekly, TFMonthly} {
		if !IsValidTimeframe(tf) {
			t.Errorf("%s rejected", tf)
		}
	}
	for _, tf := range []Timeframe{"", "HOURLY", "daily"} {
		if IsValidTimeframe(tf) {
			t.Errorf("%q accepted", tf)
		}
	}
}
