//go:build wireinject
// +build wireinject

package di

import (
	"CryptoInfo/pkg/config"
	"CryptoInfo/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvidePostgresClient,
		ProvideMarketSource,
		ProvideForecaster,
		ProvideCache,

		// Repositories
		ProvideBarStore,

		// Use cases
		ProvideBarsUseCase,
		ProvideAnalysisUseCase,
		ProvideForecastUseCase,
		ProvideRefresher,

		// HTTP and application server
		ProvideHandlers,
		ProvideApp,
	)
	return &server.App{}, nil
}
