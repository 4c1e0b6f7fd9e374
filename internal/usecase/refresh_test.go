package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"CryptoInfo/internal/domain/models"
	"CryptoInfo/pkg/logger"
)

type fakeMarketSource struct {
	klines    map[string][]models.Bar
	ticker    *models.Ticker24h
	klinesErr map[string]error
	since     map[string]time.Time
}

func (f *fakeMarketSource) Klines(ctx context.Context, symbol string, since time.Time) ([]models.Bar, error) {
	if f.since == nil {
		f.since = make(map[string]time.Time)
	}
	f.since[symbol] = since
	if err := f.klinesErr[symbol]; err != nil {
		return nil, err
	}
	return f.klines[symbol], nil
}

func (f *fakeMarketSource) Ticker24h(ctx context.Context, symbol string) (*models.Ticker24h, error) {
	if f.ticker == nil {
		return nil, errors.New("ticker unavailable")
	}
	return f.ticker, nil
}

type fakeMetrics struct {
	stored int
	errs   []string
}

func (f *fakeMetrics) RecordBarsStored(source, symbol string, n int) { f.stored += n }
func (f *fakeMetrics) RecordError(kind string)                      { f.errs = append(f.errs, kind) }
func (f *fakeMetrics) RecordLastClose(symbol string, price float64) {}
func (f *fakeMetrics) RecordLatency(op string, seconds float64)     {}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRefreshResumesFromLatestStoredDate(t *testing.T) {
	stored := uptrendHistory("BTCUSDT", 10)
	store := &fakeBarStore{history: map[string][]models.Bar{"BTCUSDT": stored}}
	source := &fakeMarketSource{
		klines: map[string][]models.Bar{"BTCUSDT": uptrendHistory("BTCUSDT", 3)},
		ticker: &models.Ticker24h{Symbol: "BTCUSDT", LastPrice: 105},
	}
	m := &fakeMetrics{}

	r := NewHistoryRefresher(store, source, m, testLogger(t), []string{"BTCUSDT"}, 365)
	r.Refresh(context.Background())

	wantSince := stored[len(stored)-1].Date
	if !source.since["BTCUSDT"].Equal(wantSince) {
		t.Errorf("since = %v, want %v", source.since["BTCUSDT"], wantSince)
	}
	if m.stored != 3 {
		t.Errorf("stored = %d, want 3", m.stored)
	}
	if len(m.errs) != 0 {
		t.Errorf("unexpected errors: %v", m.errs)
	}
}

func TestRefreshBackfillsEmptySymbol(t *testing.T) {
	store := &fakeBarStore{history: map[string][]models.Bar{}}
	source := &fakeMarketSource{klines: map[string][]models.Bar{}}
	m := &fakeMetrics{}

	r := NewHistoryRefresher(store, source, m, testLogger(t), []string{"ETHUSDT"}, 30)
	r.Refresh(context.Background())

	since := source.since["ETHUSDT"]
	age := time.Since(since)
	if age < 29*24*time.Hour || age > 31*24*time.Hour {
		t.Errorf("backfill window off: since = %v", since)
	}
}

func TestRefreshSkipsFailingSymbol(t *testing.T) {
	store := &fakeBarStore{history: map[string][]models.Bar{}}
	source := &fakeMarketSource{
		klines:    map[string][]models.Bar{"ETHUSDT": uptrendHistory("ETHUSDT", 2)},
		klinesErr: map[string]error{"BTCUSDT": errors.New("rate limited")},
		ticker:    &models.Ticker24h{Symbol: "ETHUSDT"},
	}
	m := &fakeMetrics{}

	r := NewHistoryRefresher(store, source, m, testLogger(t), []string{"BTCUSDT", "ETHUSDT"}, 30)
	r.Refresh(context.Background())

	if len(m.errs) != 1 {
		t.Fatalf("errors = %v, want one refresh error", m.errs)
	}
	if m.stored != 2 {
		t.Errorf("stored = %d, want 2 for the healthy symbol", m.stored)
	}
}
