package usecase

import (
	"context"
	"time"

	domrepo "CryptoInfo/internal/domain/repository"
	"CryptoInfo/pkg/logger"
)

// HistoryRefresher keeps the stored daily history current by pulling fresh
// klines from the market source for every configured symbol.
type HistoryRefresher struct {
	store        domrepo.BarStore
	source       domrepo.MarketSource
	metrics      domrepo.Metrics
	log          *logger.Logger
	symbols      []string
	backfillDays int
}

func NewHistoryRefresher(
	store domrepo.BarStore,
	source domrepo.MarketSource,
	metrics domrepo.Metrics,
	log *logger.Logger,
	symbols []string,
	backfillDays int,
) *HistoryRefresher {
	return &HistoryRefresher{
		store:        store,
		source:       source,
		metrics:      metrics,
		log:          log,
		symbols:      symbols,
		backfillDays: backfillDays,
	}
}

// Refresh updates every configured symbol. A failing symbol is logged and
// skipped so one bad pair cannot stall the rest of the run.
func (r *HistoryRefresher) Refresh(ctx context.Context) {
	start := time.Now()
	for _, symbol := range r.symbols {
		if ctx.Err() != nil {
			return
		}
		if err := r.refreshSymbol(ctx, symbol); err != nil {
			r.metrics.RecordError("refresh")
			r.log.Error("refresh symbol failed",
				logger.String("symbol", symbol),
				logger.Error(err),
			)
		}
	}
	r.metrics.RecordLatency("refresh", time.Since(start).Seconds())
}

func (r *HistoryRefresher) refreshSymbol(ctx context.Context, symbol string) error {
	since, err := r.sinceFor(ctx, symbol)
	if err != nil {
		return err
	}

	bars, err := r.source.Klines(ctx, symbol, since)
	if err != nil {
		return err
	}
	if len(bars) == 0 {
		r.log.Debug("no new bars", logger.String("symbol", symbol))
		return nil
	}

	// attach the current 24h snapshot to the freshly downloaded rows
	if ticker, err := r.source.Ticker24h(ctx, symbol); err != nil {
		r.log.Warn("ticker fetch failed",
			logger.String("symbol", symbol),
			logger.Error(err),
		)
	} else {
		for i := range bars {
			bars[i].LastPrice24h = ticker.LastPrice
			bars[i].Volume24h = ticker.Volume
			bars[i].QuoteVolume24h = ticker.QuoteVolume
			bars[i].High24h = ticker.High
			bars[i].Low24h = ticker.Low
		}
	}

	stored, err := r.store.UpsertBatch(ctx, bars)
	if err != nil {
		return err
	}

	last := bars[len(bars)-1]
	r.metrics.RecordBarsStored("binance", symbol, int(stored))
	r.metrics.RecordLastClose(symbol, last.Close)
	r.log.Info("history refreshed",
		logger.String("symbol", symbol),
		logger.Int64("stored", stored),
		logger.String("through", last.Date.Format("2006-01-02")),
	)
	return nil
}

// sinceFor starts from the latest stored day so already-present bars are
// re-fetched only at the boundary. An empty table backfills the configured
// window.
func (r *HistoryRefresher) sinceFor(ctx context.Context, symbol string) (time.Time, error) {
	latest, ok, err := r.store.LatestDate(ctx, symbol)
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return latest, nil
	}
	return time.Now().UTC().AddDate(0, 0, -r.backfillDays), nil
}
