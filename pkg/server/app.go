package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	domrepo "CryptoInfo/internal/domain/repository"
	icache "CryptoInfo/internal/service/cache"
	"CryptoInfo/internal/usecase"
	"CryptoInfo/pkg/config"
	xhttp "CryptoInfo/pkg/http"
	applogger "CryptoInfo/pkg/logger"
	pkgpg "CryptoInfo/pkg/postgres"
)

const defaultRefreshCron = "0 0 * * *"

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handlers   []xhttp.Handler
	refresher  *usecase.HistoryRefresher
	store      domrepo.BarStore
	pgClient   *pkgpg.Client
	cache      icache.BytesCache
	httpServer *xhttp.Server
	scheduler  *cron.Cron
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handlers []xhttp.Handler,
	refresher *usecase.HistoryRefresher,
	store domrepo.BarStore,
	pgClient *pkgpg.Client,
	cache icache.BytesCache,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		handlers:  handlers,
		refresher: refresher,
		store:     store,
		pgClient:  pgClient,
		cache:     cache,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(a.cfg.Server.CORSOrigins),
		xhttp.WithLogger(a.log),
	}
	if a.cfg.Metrics.Enabled {
		path := a.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		opts = append(opts, xhttp.WithMetricsPath(path))
	}
	a.httpServer = xhttp.NewServer(a.handlers, opts...)

	a.startScheduler(ctx)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// startScheduler begins the periodic history refresh. The first refresh runs
// immediately in the background so a fresh deployment serves data without
// waiting for the next cron tick.
func (a *App) startScheduler(ctx context.Context) {
	spec := a.cfg.Binance.RefreshCron
	if spec == "" {
		spec = defaultRefreshCron
	}

	a.scheduler = cron.New()
	if _, err := a.scheduler.AddFunc(spec, func() { a.refresher.Refresh(ctx) }); err != nil {
		a.log.Error("refresh schedule invalid",
			applogger.String("spec", spec),
			applogger.Error(err),
		)
	} else {
		a.scheduler.Start()
		a.log.Info("refresh scheduled",
			applogger.String("spec", spec),
			applogger.Strings("symbols", a.cfg.Binance.Symbols),
		)
	}

	go a.refresher.Refresh(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.scheduler != nil {
		cronCtx := a.scheduler.Stop()
		select {
		case <-cronCtx.Done():
		case <-time.After(30 * time.Second):
			a.log.Warn("refresh job still running, abandoning")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if closer, ok := a.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.log.Warn("cache close error", applogger.Error(err))
		}
	}

	if a.pgClient != nil {
		if err := a.pgClient.Close(); err != nil {
			a.log.Warn("postgres close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
