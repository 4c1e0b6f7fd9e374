package repository

import (
	"context"
	"time"

	"CryptoInfo/internal/domain/models"
)

// BarStore is the persistence boundary for daily OHLCV bars. History reads
// return bars in ascending date order; the analysis pipeline depends on it.
type BarStore interface {
	Init(ctx context.Context) error // ensure tables and indexes
	FetchHistory(ctx context.Context, symbol string) ([]models.Bar, error)
	FetchRange(ctx context.Context, symbol string, from, to time.Time) ([]models.Bar, error)
	List(ctx context.Context, page, size int) ([]models.Bar, error)
	FindByID(ctx context.Context, id int64) (*models.Bar, error)
	SearchSymbols(ctx context.Context, query string) ([]string, error)
	LatestDate(ctx context.Context, symbol string) (time.Time, bool, error)
	UpsertBatch(ctx context.Context, bars []models.Bar) (int64, error)
	Health(ctx context.Context) error
	Close() error
}

// Forecaster produces price forecasts for a symbol. Implementations may shell
// out to external model scripts or call a remote service.
type Forecaster interface {
	Predict(ctx context.Context, symbol string) (*models.Prediction, error)
	PredictLSTM(ctx context.Context, symbol string, lookback, days int) (*models.LSTMPrediction, error)
}

// MarketSource serves raw daily klines and ticker snapshots from an exchange.
type MarketSource interface {
	Klines(ctx context.Context, symbol string, since time.Time) ([]models.Bar, error)
	Ticker24h(ctx context.Context, symbol string) (*models.Ticker24h, error)
}

// Metrics records operational measurements.
type Metrics interface {
	RecordBarsStored(source, symbol string, n int)
	RecordError(kind string)
	RecordLastClose(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
