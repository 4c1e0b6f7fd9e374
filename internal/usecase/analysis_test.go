package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
	apphttp "CryptoInfo/pkg/http"
)

type fakeBarStore struct {
	history map[string][]models.Bar
	err     error
}

func (f *fakeBarStore) Init(ctx context.Context) error { return nil }

func (f *fakeBarStore) FetchHistory(ctx context.Context, symbol string) ([]models.Bar, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history[symbol], nil
}

func (f *fakeBarStore) FetchRange(ctx context.Context, symbol string, from, to time.Time) ([]models.Bar, error) {
	var out []models.Bar
	for _, b := range f.history[symbol] {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBarStore) List(ctx context.Context, page, size int) ([]models.Bar, error) {
	return nil, nil
}

func (f *fakeBarStore) FindByID(ctx context.Context, id int64) (*models.Bar, error) {
	for _, bars := range f.history {
		for _, b := range bars {
			if b.ID == id {
				bar := b
				return &bar, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeBarStore) SearchSymbols(ctx context.Context, query string) ([]string, error) {
	return nil, nil
}

func (f *fakeBarStore) LatestDate(ctx context.Context, symbol string) (time.Time, bool, error) {
	bars := f.history[symbol]
	if len(bars) == 0 {
		return time.Time{}, false, nil
	}
	return bars[len(bars)-1].Date, true, nil
}

func (f *fakeBarStore) UpsertBatch(ctx context.Context, bars []models.Bar) (int64, error) {
	return int64(len(bars)), nil
}

func (f *fakeBarStore) Health(ctx context.Context) error { return nil }
func (f *fakeBarStore) Close() error                     { return nil }

// uptrendHistory builds n daily bars with steadily rising closes and volume.
func uptrendHistory(symbol string, n int) []models.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.Bar, 0, n)
	for i := 0; i < n; i++ {
		price := 100.0 + float64(i)
		bars = append(bars, models.Bar{
			ID:     int64(i + 1),
			Date:   start.AddDate(0, 0, i),
			Open:   price,
			High:   price + 1.5,
			Low:    price - 1.0,
			Close:  price + 1.0,
			Volume: 1000 + float64(i)*10,
			Symbol: symbol,
		})
	}
	return bars
}

func TestAnalyzeMonthlyUptrend(t *testing.T) {
	// ~58 monthly bars after aggregation
	store := &fakeBarStore{history: map[string][]models.Bar{
		"BTCUSDT": uptrendHistory("BTCUSDT", 1760),
	}}
	uc := NewAnalysisUseCase(store)

	got, err := uc.Analyze(context.Background(), "BTCUSDT", domrepo.TFMonthly)
	if err != nil {
		t.Fatal(err)
	}

	if got.Symbol != "BTCUSDT" {
		t.Errorf("symbol = %s", got.Symbol)
	}
	if got.Timeframe != "MONTHLY" {
		t.Errorf("timeframe = %s", got.Timeframe)
	}
	if len(got.Oscillators) == 0 || len(got.MovingAverages) == 0 {
		t.Fatalf("readings missing: %d oscillators, %d moving averages",
			len(got.Oscillators), len(got.MovingAverages))
	}

	// in a steady uptrend price sits above every trailing average
	for _, r := range got.MovingAverages {
		if r.Name == "SMA" || r.Name == "EMA" || r.Name == "WMA" {
			if r.Signal != models.SignalBuy {
				t.Errorf("%s signal = %s, want BUY", r.Name, r.Signal)
			}
		}
	}
	overall := got.MovingAverageSummary.OverallSignal
	if overall != models.SignalBuy && overall != models.SignalStrongBuy {
		t.Errorf("moving average overall = %s", overall)
	}

	counts := got.OscillatorSummary
	if counts.BuyCount+counts.SellCount+counts.NeutralCount != len(got.Oscillators) {
		t.Errorf("oscillator summary counts do not add up: %+v", counts)
	}
}

func TestAnalyzeDailyPassesThrough(t *testing.T) {
	store := &fakeBarStore{history: map[string][]models.Bar{
		"ETHUSDT": uptrendHistory("ETHUSDT", 120),
	}}
	uc := NewAnalysisUseCase(store)

	got, err := uc.Analyze(context.Background(), "ETHUSDT", domrepo.TFDaily)
	if err != nil {
		t.Fatal(err)
	}
	if got.Timeframe != "DAILY" {
		t.Errorf("timeframe = %s", got.Timeframe)
	}
}

func TestAnalyzeUnknownSymbol(t *testing.T) {
	uc := NewAnalysisUseCase(&fakeBarStore{history: map[string][]models.Bar{}})

	_, err := uc.Analyze(context.Background(), "NOPEUSDT", domrepo.TFDaily)
	if err == nil {
		t.Fatal("expected error")
	}
	var appErr *apphttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 400 {
		t.Fatalf("got %v, want 400 AppError", err)
	}
}

func TestAnalyzeInsufficientHistory(t *testing.T) {
	// 90 daily bars collapse to ~3 monthly bars
	store := &fakeBarStore{history: map[string][]models.Bar{
		"BTCUSDT": uptrendHistory("BTCUSDT", 90),
	}}
	uc := NewAnalysisUseCase(store)

	_, err := uc.Analyze(context.Background(), "BTCUSDT", domrepo.TFMonthly)
	var appErr *apphttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 400 {
		t.Fatalf("got %v, want 400 AppError", err)
	}
}

func TestAnalyzeInvalidTimeframe(t *testing.T) {
	uc := NewAnalysisUseCase(&fakeBarStore{})

	_, err := uc.Analyze(context.Background(), "BTCUSDT", domrepo.Timeframe("HOURLY"))
	var appErr *apphttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 400 {
		t.Fatalf("got %v, want 400 AppError", err)
	}
}

func TestAnalyzeStoreError(t *testing.T) {
	uc := NewAnalysisUseCase(&fakeBarStore{err: errors.New("connection refused")})

	_, err := uc.Analyze(context.Background(), "BTCUSDT", domrepo.TFDaily)
	if err == nil {
		t.Fatal("expected error")
	}
	var appErr *apphttp.AppError
	if errors.As(err, &appErr) {
		t.Fatalf("store failure must not surface as client error: %v", err)
	}
}
