package usecase

import (
	"context"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
)

// ForecastUseCase delegates price forecasts to the configured Forecaster.
type ForecastUseCase struct {
	forecaster domrepo.Forecaster
}

func NewForecastUseCase(forecaster domrepo.Forecaster) *ForecastUseCase {
	return &ForecastUseCase{forecaster: forecaster}
}

func (uc *ForecastUseCase) Predict(ctx context.Context, symbol string) (*models.Prediction, error) {
	return uc.forecaster.Predict(ctx, symbol)
}

func (uc *ForecastUseCase) PredictLSTM(ctx context.Context, symbol string, lookback, days int) (*models.LSTMPrediction, error) {
	return uc.forecaster.PredictLSTM(ctx, symbol, lookback, days)
}
