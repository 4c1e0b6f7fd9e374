package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"CryptoInfo/internal/domain/models"
	applogger "CryptoInfo/pkg/logger"
)

const maxPageSize = 10000

const barColumns = `id, date, open, high, low, close, volume, quote_asset_volume,
	symbol, base_asset, quote_asset, symbol_used,
	last_price_24h, volume_24h, quote_volume_24h, high_24h, low_24h`

// PostgresBarStore persists daily OHLCV bars in the crypto_coins table.
// The sqlx pool is injected; this type never owns a global connection.
type PostgresBarStore struct {
	db *sqlx.DB
	l  *applogger.Logger
}

func NewPostgresBarStore(db *sqlx.DB) *PostgresBarStore {
	return &PostgresBarStore{db: db}
}

// SetLogger injects a structured logger.
func (s *PostgresBarStore) SetLogger(l *applogger.Logger) { s.l = l }

// Init ensures the table and its natural-key index exist.
func (s *PostgresBarStore) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS crypto_coins (
			id BIGSERIAL PRIMARY KEY,
			date DATE NOT NULL,
			open DOUBLE PRECISION NOT NULL DEFAULT 0,
			high DOUBLE PRECISION NOT NULL DEFAULT 0,
			low DOUBLE PRECISION NOT NULL DEFAULT 0,
			close DOUBLE PRECISION NOT NULL DEFAULT 0,
			volume DOUBLE PRECISION NOT NULL DEFAULT 0,
			quote_asset_volume DOUBLE PRECISION NOT NULL DEFAULT 0,
			symbol TEXT NOT NULL,
			base_asset TEXT NOT NULL DEFAULT '',
			quote_asset TEXT NOT NULL DEFAULT '',
			symbol_used TEXT NOT NULL DEFAULT '',
			last_price_24h DOUBLE PRECISION NOT NULL DEFAULT 0,
			volume_24h DOUBLE PRECISION NOT NULL DEFAULT 0,
			quote_volume_24h DOUBLE PRECISION NOT NULL DEFAULT 0,
			high_24h DOUBLE PRECISION NOT NULL DEFAULT 0,
			low_24h DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS crypto_coins_symbol_date_idx
			ON crypto_coins (symbol, date)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init crypto_coins: %w", err)
		}
	}
	return nil
}

// FetchHistory returns every bar for a symbol, ascending by date. Symbol
// matching is case-insensitive.
func (s *PostgresBarStore) FetchHistory(ctx context.Context, symbol string) ([]models.Bar, error) {
	query := `SELECT ` + barColumns + `
		FROM crypto_coins
		WHERE LOWER(symbol) = LOWER($1)
		ORDER BY date ASC`

	var bars []models.Bar
	if err := s.db.SelectContext(ctx, &bars, query, symbol); err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", symbol, err)
	}
	return bars, nil
}

// FetchRange returns bars for a symbol between from and to inclusive.
func (s *PostgresBarStore) FetchRange(ctx context.Context, symbol string, from, to time.Time) ([]models.Bar, error) {
	query := `SELECT ` + barColumns + `
		FROM crypto_coins
		WHERE LOWER(symbol) = LOWER($1) AND date BETWEEN $2 AND $3
		ORDER BY date ASC`

	var bars []models.Bar
	if err := s.db.SelectContext(ctx, &bars, query, symbol, from, to); err != nil {
		return nil, fmt.Errorf("fetch range for %s: %w", symbol, err)
	}
	return bars, nil
}

// List pages through all bars. Size is capped to keep responses bounded.
func (s *PostgresBarStore) List(ctx context.Context, page, size int) ([]models.Bar, error) {
	if size <= 0 || size > maxPageSize {
		size = maxPageSize
	}
	if page < 0 {
		page = 0
	}

	query := `SELECT ` + barColumns + `
		FROM crypto_coins
		ORDER BY symbol ASC, date ASC
		LIMIT $1 OFFSET $2`

	var bars []models.Bar
	if err := s.db.SelectContext(ctx, &bars, query, size, page*size); err != nil {
		return nil, fmt.Errorf("list bars: %w", err)
	}
	return bars, nil
}

// FindByID returns one bar by primary key, or nil when absent.
func (s *PostgresBarStore) FindByID(ctx context.Context, id int64) (*models.Bar, error) {
	query := `SELECT ` + barColumns + ` FROM crypto_coins WHERE id = $1`

	var bar models.Bar
	if err := s.db.GetContext(ctx, &bar, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find bar %d: %w", id, err)
	}
	return &bar, nil
}

// SearchSymbols returns distinct symbol names matching the query substring.
func (s *PostgresBarStore) SearchSymbols(ctx context.Context, query string) ([]string, error) {
	q := `SELECT DISTINCT symbol
		FROM crypto_coins
		WHERE LOWER(symbol) LIKE LOWER('%' || $1 || '%')
		ORDER BY symbol ASC`

	var symbols []string
	if err := s.db.SelectContext(ctx, &symbols, q, query); err != nil {
		return nil, fmt.Errorf("search symbols %q: %w", query, err)
	}
	return symbols, nil
}

// LatestDate returns the most recent stored date for a symbol. The bool is
// false when the symbol has no rows.
func (s *PostgresBarStore) LatestDate(ctx context.Context, symbol string) (time.Time, bool, error) {
	query := `SELECT MAX(date) FROM crypto_coins WHERE LOWER(symbol) = LOWER($1)`

	var latest sql.NullTime
	if err := s.db.GetContext(ctx, &latest, query, symbol); err != nil {
		return time.Time{}, false, fmt.Errorf("latest date for %s: %w", symbol, err)
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}
	return latest.Time, true, nil
}

// UpsertBatch writes bars in one transaction, replacing rows that share the
// (symbol, date) natural key. Returns the number of bars written.
func (s *PostgresBarStore) UpsertBatch(ctx context.Context, bars []models.Bar) (int64, error) {
	if len(bars) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO crypto_coins (
			date, open, high, low, close, volume, quote_asset_volume,
			symbol, base_asset, quote_asset, symbol_used,
			last_price_24h, volume_24h, quote_volume_24h, high_24h, low_24h
		) VALUES (
			:date, :open, :high, :low, :close, :volume, :quote_asset_volume,
			:symbol, :base_asset, :quote_asset, :symbol_used,
			:last_price_24h, :volume_24h, :quote_volume_24h, :high_24h, :low_24h
		)
		ON CONFLICT (symbol, date) DO UPDATE SET
			open = EXCLUDED.open,
			high = EXCLUDED.high,
			low = EXCLUDED.low,
			close = EXCLUDED.close,
			volume = EXCLUDED.volume,
			quote_asset_volume = EXCLUDED.quote_asset_volume,
			last_price_24h = EXCLUDED.last_price_24h,
			volume_24h = EXCLUDED.volume_24h,
			quote_volume_24h = EXCLUDED.quote_volume_24h,
			high_24h = EXCLUDED.high_24h,
			low_24h = EXCLUDED.low_24h`

	var written int64
	for i := range bars {
		if _, err := tx.NamedExecContext(ctx, query, &bars[i]); err != nil {
			return 0, fmt.Errorf("upsert bar %s %s: %w",
				bars[i].Symbol, bars[i].Date.Format("2006-01-02"), err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert: %w", err)
	}

	if s.l != nil {
		s.l.Debug("bars upserted", applogger.Int64("count", written))
	}
	return written, nil
}

// Health pings the database.
func (s *PostgresBarStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying pool.
func (s *PostgresBarStore) Close() error {
	return s.db.Close()
}
