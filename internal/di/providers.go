package di

import (
	"context"
	"fmt"
	"time"

	"CryptoInfo/internal/domain/repository"
	"CryptoInfo/internal/handler/api"
	internalrepo "CryptoInfo/internal/repository"
	"CryptoInfo/internal/service/binance"
	icache "CryptoInfo/internal/service/cache"
	"CryptoInfo/internal/service/forecast"
	"CryptoInfo/internal/usecase"
	"CryptoInfo/pkg/config"
	xhttp "CryptoInfo/pkg/http"
	"CryptoInfo/pkg/logger"
	"CryptoInfo/pkg/metrics"
	pkgpg "CryptoInfo/pkg/postgres"
	"CryptoInfo/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	lcfg := &logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lcfg.Level == "" {
		lcfg.Level = "info"
	}
	if lcfg.Format == "" {
		lcfg.Format = "console"
	}
	if lcfg.Output == "" {
		lcfg.Output = "stdout"
	}
	return logger.New(lcfg)
}

// ProvidePostgresClient creates a Postgres client.
func ProvidePostgresClient(cfg *config.Config) (*pkgpg.Client, error) {
	client, err := pkgpg.NewClient(
		pkgpg.WithHost(cfg.Postgres.Host),
		pkgpg.WithPort(cfg.Postgres.Port),
		pkgpg.WithDatabase(cfg.Postgres.Database),
		pkgpg.WithCredentials(cfg.Postgres.User, cfg.Postgres.Password),
		pkgpg.WithSSLMode(cfg.Postgres.SSLMode),
		pkgpg.WithMaxConnections(cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns),
		pkgpg.WithConnLifetime(cfg.Postgres.ConnLifetime),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres client: %w", err)
	}
	return client, nil
}

// ProvideBarStore creates the bar store and ensures its schema exists.
func ProvideBarStore(client *pkgpg.Client, l *logger.Logger) (repository.BarStore, error) {
	store := internalrepo.NewPostgresBarStore(client.DB())
	store.SetLogger(l)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("bar store schema: %w", err)
	}
	return store, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketSource creates the Binance kline source.
func ProvideMarketSource(cfg *config.Config, l *logger.Logger) repository.MarketSource {
	return binance.New(
		cfg.Binance.BaseURL,
		cfg.Binance.Timeout,
		binance.WithLogger(l),
		binance.WithRetry(cfg.Binance.RetryCount, cfg.Binance.RetryWait),
	)
}

// ProvideForecaster creates the Python subprocess forecaster.
func ProvideForecaster(cfg *config.Config, l *logger.Logger) repository.Forecaster {
	return forecast.New(
		cfg.Forecast.PythonCommand,
		cfg.Forecast.ScriptsDir,
		cfg.Forecast.Timeout,
		l,
	)
}

// ProvideCache picks Redis when configured, falling back to in-process TTL.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	if cfg.Analysis.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Analysis.Redis.Addr,
			Password: cfg.Analysis.Redis.Password,
			DB:       cfg.Analysis.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideRefresher creates the scheduled history refresher.
func ProvideRefresher(
	store repository.BarStore,
	source repository.MarketSource,
	m repository.Metrics,
	l *logger.Logger,
	cfg *config.Config,
) *usecase.HistoryRefresher {
	return usecase.NewHistoryRefresher(store, source, m, l, cfg.Binance.Symbols, cfg.Binance.BackfillDays)
}

// ProvideBarsUseCase creates bar read logic.
func ProvideBarsUseCase(store repository.BarStore) *usecase.BarsUseCase {
	return usecase.NewBarsUseCase(store)
}

// ProvideAnalysisUseCase creates the analysis pipeline.
func ProvideAnalysisUseCase(store repository.BarStore) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(store)
}

// ProvideForecastUseCase creates forecast delegation logic.
func ProvideForecastUseCase(forecaster repository.Forecaster) *usecase.ForecastUseCase {
	return usecase.NewForecastUseCase(forecaster)
}

// ProvideHandlers assembles the HTTP route handlers.
func ProvideHandlers(
	l *logger.Logger,
	bars *usecase.BarsUseCase,
	analysis *usecase.AnalysisUseCase,
	fc *usecase.ForecastUseCase,
	store repository.BarStore,
	cache icache.BytesCache,
	cfg *config.Config,
) []xhttp.Handler {
	ah := api.NewAnalysisHandler(l, analysis)
	ah.SetCache(cache, cfg.Analysis.CacheTTL)
	ah.SetRateLimit(cfg.Analysis.RateLimit.Capacity, cfg.Analysis.RateLimit.Refill)

	return []xhttp.Handler{
		api.NewCryptoHandler(l, bars, store),
		ah,
		api.NewForecastHandler(l, fc),
	}
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	handlers []xhttp.Handler,
	refresher *usecase.HistoryRefresher,
	store repository.BarStore,
	pgClient *pkgpg.Client,
	cache icache.BytesCache,
) *server.App {
	return server.New(cfg, l, handlers, refresher, store, pgClient, cache)
}
