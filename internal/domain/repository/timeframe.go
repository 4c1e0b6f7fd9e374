package repository

import "strings"

// Timeframe is the aggregation granularity for bar series.
type Timeframe string

const (
	TFDaily   Timeframe = "DAILY"
	TFWeekly  Timeframe = "WEEKLY"
	TFMonthly Timeframe = "MONTHLY"
)

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TFDaily, TFWeekly, TFMonthly:
		return true
	default:
		return false
	}
}

// DefaultTimeframe returns the default timeframe for raw reads.
func DefaultTimeframe() Timeframe { return TFDaily }

// NormalizeTimeframe uppercases a raw timeframe string, substituting the
// default when empty. Unknown values pass through so callers can reject them.
func NormalizeTimeframe(s string) Timeframe {
	if s == "" {
		return DefaultTimeframe()
	}
	return Timeframe(strings.ToUpper(s))
}
