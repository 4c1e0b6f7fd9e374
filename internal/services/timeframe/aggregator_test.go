package timeframe

import (
	"testing"
	"time"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bar(date time.Time, open, high, low, close, volume float64) models.Bar {
	return models.Bar{
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
		Symbol: "BTCUSDT",
	}
}

func TestAggregateDailyIsIdentity(t *testing.T) {
	bars := []models.Bar{
		bar(day(2024, 10, 7), 1, 2, 0.5, 1.5, 10),
		bar(day(2024, 10, 8), 1.5, 3, 1, 2.5, 20),
		bar(day(2024, 10, 9), 2.5, 4, 2, 3, 30),
	}
	got := Aggregate(bars, domrepo.TFDaily)
	if len(got) != len(bars) {
		t.Fatalf("expected %d bars, got %d", len(bars), len(got))
	}
	for i := range bars {
		if got[i] != bars[i] {
			t.Fatalf("bar %d changed: %+v != %+v", i, got[i], bars[i])
		}
	}
}

func TestAggregateWeeklySingleWeek(t *testing.T) {
	// Mon 2024-10-07 through Fri 2024-10-11, one ISO week.
	bars := []models.Bar{
		bar(day(2024, 10, 7), 100, 110, 95, 105, 10),
		bar(day(2024, 10, 8), 105, 120, 100, 115, 20),
		bar(day(2024, 10, 9), 115, 118, 90, 92, 30),
		bar(day(2024, 10, 10), 92, 99, 88, 95, 0),
		bar(day(2024, 10, 11), 95, 101, 94, 100, 40),
	}
	got := Aggregate(bars, domrepo.TFWeekly)
	if len(got) != 1 {
		t.Fatalf("expected 1 weekly bar, got %d", len(got))
	}
	w := got[0]
	if !w.Date.Equal(day(2024, 10, 7)) {
		t.Fatalf("expected Monday period start, got %v", w.Date)
	}
	if w.Open != 100 || w.Close != 100 || w.High != 120 || w.Low != 88 {
		t.Fatalf("unexpected OHLC: %+v", w)
	}
	if w.Volume != 100 {
		t.Fatalf("expected summed volume 100, got %v", w.Volume)
	}
	if w.Symbol != "BTCUSDT" {
		t.Fatalf("symbol not carried over: %q", w.Symbol)
	}
}

func TestAggregateWeeklySundayJoinsPrecedingMonday(t *testing.T) {
	bars := []models.Bar{
		bar(day(2024, 10, 7), 1, 1, 1, 1, 1),  // Monday
		bar(day(2024, 10, 13), 2, 2, 2, 2, 1), // Sunday, same ISO week
		bar(day(2024, 10, 14), 3, 3, 3, 3, 1), // next Monday
	}
	got := Aggregate(bars, domrepo.TFWeekly)
	if len(got) != 2 {
		t.Fatalf("expected 2 weekly bars, got %d", len(got))
	}
	if got[0].Close != 2 {
		t.Fatalf("Sunday close should win in first week, got %v", got[0].Close)
	}
	if !got[1].Date.Equal(day(2024, 10, 14)) {
		t.Fatalf("second week should start on next Monday, got %v", got[1].Date)
	}
}

func TestAggregateMonthly(t *testing.T) {
	bars := []models.Bar{
		bar(day(2024, 1, 2), 10, 12, 9, 11, 5),
		bar(day(2024, 1, 31), 11, 15, 10, 14, 5),
		bar(day(2024, 2, 1), 14, 16, 13, 15, 5),
	}
	got := Aggregate(bars, domrepo.TFMonthly)
	if len(got) != 2 {
		t.Fatalf("expected 2 monthly bars, got %d", len(got))
	}
	jan := got[0]
	if !jan.Date.Equal(day(2024, 1, 1)) {
		t.Fatalf("expected period start 2024-01-01, got %v", jan.Date)
	}
	if jan.Open != 10 || jan.Close != 14 || jan.High != 15 || jan.Low != 9 || jan.Volume != 10 {
		t.Fatalf("unexpected January aggregate: %+v", jan)
	}
	if !got[1].Date.Equal(day(2024, 2, 1)) {
		t.Fatalf("expected period start 2024-02-01, got %v", got[1].Date)
	}
}

func TestAggregateIdempotentOnAlignedInput(t *testing.T) {
	// One bar per period, already dated at the period start.
	bars := []models.Bar{
		bar(day(2024, 10, 7), 1, 1, 1, 1, 5),
		bar(day(2024, 10, 14), 2, 2, 2, 2, 6),
		bar(day(2024, 10, 21), 3, 3, 3, 3, 7),
	}
	got := Aggregate(bars, domrepo.TFWeekly)
	if len(got) != len(bars) {
		t.Fatalf("expected %d bars, got %d", len(bars), len(got))
	}
	for i := range bars {
		if got[i] != bars[i] {
			t.Fatalf("bar %d changed: %+v != %+v", i, got[i], bars[i])
		}
	}
}

func TestAggregateLengthMonotonicity(t *testing.T) {
	var bars []models.Bar
	d := day(2024, 1, 1)
	for i := 0; i < 200; i++ {
		bars = append(bars, bar(d, 1, 2, 0.5, 1.5, 1))
		d = d.AddDate(0, 0, 1)
	}
	weekly := Aggregate(bars, domrepo.TFWeekly)
	monthly := Aggregate(bars, domrepo.TFMonthly)
	if len(weekly) > len(bars) {
		t.Fatalf("weekly longer than daily: %d > %d", len(weekly), len(bars))
	}
	if len(monthly) > len(weekly) {
		t.Fatalf("monthly longer than weekly: %d > %d", len(monthly), len(weekly))
	}
}

func TestAggregateDegenerateInputs(t *testing.T) {
	if got := Aggregate(nil, domrepo.TFWeekly); len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %d", len(got))
	}

	single := []models.Bar{bar(day(2024, 10, 9), 5, 6, 4, 5.5, 3)}
	got := Aggregate(single, domrepo.TFWeekly)
	if len(got) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(got))
	}
	w := got[0]
	if !w.Date.Equal(day(2024, 10, 7)) {
		t.Fatalf("single bar should carry the period start date, got %v", w.Date)
	}
	if w.Open != 5 || w.High != 6 || w.Low != 4 || w.Close != 5.5 || w.Volume != 3 {
		t.Fatalf("single bar aggregate should equal the bar: %+v", w)
	}

	// Inputs must never be mutated.
	src := []models.Bar{
		bar(day(2024, 10, 7), 1, 2, 0.5, 1.5, 10),
		bar(day(2024, 10, 8), 1.5, 9, 0.1, 2.5, 20),
	}
	orig := make([]models.Bar, len(src))
	copy(orig, src)
	Aggregate(src, domrepo.TFWeekly)
	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("input bar %d mutated: %+v != %+v", i, src[i], orig[i])
		}
	}
}
