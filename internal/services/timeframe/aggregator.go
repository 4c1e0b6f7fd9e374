// Package timeframe reduces daily OHLCV series to coarser granularities.
package timeframe

import (
	"time"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
	"CryptoInfo/pkg/util"
)

// Aggregate merges a date-ascending daily bar series into one bar per period.
// DAILY is the identity transform. For WEEKLY the period starts on the Monday
// on or before each bar's date; for MONTHLY on the first of the month. Within
// a period: open comes from the first bar, close from the last, high/low are
// the extremes, volume is the sum. Symbol metadata is copied from the first
// bar of the period. Input must be sorted ascending by date for one symbol;
// it is never mutated.
func Aggregate(bars []models.Bar, tf domrepo.Timeframe) []models.Bar {
	if tf == domrepo.TFDaily {
		return bars
	}

	var (
		aggregated []models.Bar
		current    *models.Bar
		period     time.Time
	)

	for _, bar := range bars {
		start := periodStart(bar.Date, tf)

		if current == nil || !period.Equal(start) {
			if current != nil {
				aggregated = append(aggregated, *current)
			}
			period = start
			seed := bar
			seed.Date = start
			current = &seed
			continue
		}

		if bar.High > current.High {
			current.High = bar.High
		}
		if bar.Low < current.Low {
			current.Low = bar.Low
		}
		current.Close = bar.Close
		current.Volume += bar.Volume
	}

	if current != nil {
		aggregated = append(aggregated, *current)
	}

	return aggregated
}

func periodStart(d time.Time, tf domrepo.Timeframe) time.Time {
	switch tf {
	case domrepo.TFWeekly:
		return util.WeekStart(d)
	case domrepo.TFMonthly:
		return util.MonthStart(d)
	default:
		return d
	}
}
