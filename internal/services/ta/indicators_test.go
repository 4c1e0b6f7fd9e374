package ta

import (
	"math"
	"testing"
	"time"

	"CryptoInfo/internal/domain/models"
)

func trendBars(n int, start, step float64) []models.Bar {
	bars := make([]models.Bar, 0, n)
	d := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	price := start
	for i := 0; i < n; i++ {
		bars = append(bars, models.Bar{
			Date:   d,
			Open:   price,
			High:   price + step,
			Low:    price - step,
			Close:  price + step/2,
			Volume: 1000 + float64(i),
			Symbol: "BTCUSDT",
		})
		price += step
		d = d.AddDate(0, 0, 1)
	}
	return bars
}

func names(rs []models.IndicatorReading) map[string]models.IndicatorReading {
	m := make(map[string]models.IndicatorReading, len(rs))
	for _, r := range rs {
		m[r.Name] = r
	}
	return m
}

func TestEvaluateOmitsIndicatorsBelowMinimum(t *testing.T) {
	osc, mas := Evaluate(trendBars(10, 100, 1))
	if len(osc) != 0 || len(mas) != 0 {
		t.Fatalf("10 bars should produce no readings, got %d/%d", len(osc), len(mas))
	}

	osc, mas = Evaluate(trendBars(16, 100, 1))
	if len(mas) != 0 {
		t.Fatalf("16 bars should produce no moving averages, got %d", len(mas))
	}
	if len(osc) != 1 || osc[0].Name != "RSI" {
		t.Fatalf("16 bars should produce exactly RSI, got %+v", osc)
	}
}

func TestEvaluateFullSeries(t *testing.T) {
	osc, mas := Evaluate(trendBars(100, 100, 1))

	om := names(osc)
	for _, want := range []string{"RSI", "MACD", "STOCH", "ADX", "CCI"} {
		if _, ok := om[want]; !ok {
			t.Fatalf("missing oscillator %s", want)
		}
	}

	mm := names(mas)
	for _, want := range []string{"SMA", "EMA", "WMA", "BB_UPPER", "BB_MIDDLE", "BB_LOWER", "VOLUME_SMA"} {
		if _, ok := mm[want]; !ok {
			t.Fatalf("missing moving average %s", want)
		}
	}

	// Sustained uptrend: price above every trailing average, volume rising.
	for _, name := range []string{"SMA", "EMA", "WMA", "VOLUME_SMA"} {
		if mm[name].Signal != models.SignalBuy {
			t.Fatalf("%s should be BUY in an uptrend, got %s", name, mm[name].Signal)
		}
	}

	// Band signals are fixed regardless of values.
	if mm["BB_UPPER"].Signal != models.SignalSell {
		t.Fatalf("BB_UPPER should always be SELL")
	}
	if mm["BB_MIDDLE"].Signal != models.SignalNeutral {
		t.Fatalf("BB_MIDDLE should always be NEUTRAL")
	}
	if mm["BB_LOWER"].Signal != models.SignalBuy {
		t.Fatalf("BB_LOWER should always be BUY")
	}

	// Band ordering sanity.
	if !(mm["BB_LOWER"].Value <= mm["BB_MIDDLE"].Value && mm["BB_MIDDLE"].Value <= mm["BB_UPPER"].Value) {
		t.Fatalf("band values out of order: %v %v %v",
			mm["BB_LOWER"].Value, mm["BB_MIDDLE"].Value, mm["BB_UPPER"].Value)
	}

	// Volume SMA is reported with zero decimals.
	if v := mm["VOLUME_SMA"].Value; v != math.Trunc(v) {
		t.Fatalf("VOLUME_SMA should be rounded to whole units, got %v", v)
	}
}

func TestNewSeriesSkipsMalformedBars(t *testing.T) {
	bars := trendBars(30, 100, 1)
	bars[5].Close = math.NaN()
	bars[11].Open = -1

	s := NewSeries(bars)
	if s.Len() != 28 {
		t.Fatalf("expected 2 bars skipped, got length %d", s.Len())
	}
}
