package api

import (
	"time"

	"CryptoInfo/internal/domain/models"
	"CryptoInfo/internal/service/metrics"
	"CryptoInfo/internal/usecase"
	xhttp "CryptoInfo/pkg/http"
	xlogger "CryptoInfo/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastHandler serves price forecasts produced by the Python models.
type ForecastHandler struct {
	logger   *xlogger.Logger
	forecast *usecase.ForecastUseCase
}

func NewForecastHandler(logger *xlogger.Logger, forecast *usecase.ForecastUseCase) *ForecastHandler {
	metrics.Register()
	return &ForecastHandler{logger: logger, forecast: forecast}
}

func (h *ForecastHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/predictions/:symbol", h.Predict)
	g.GET("/lstm/:symbol", h.PredictLSTM)
}

func (h *ForecastHandler) Predict(c echo.Context) error {
	start := time.Now()
	endpoint := "predictions"
	defer func() {
		metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req := &models.PredictionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.forecast.Predict(c.Request().Context(), req.Symbol)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("prediction error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ForecastHandler) PredictLSTM(c echo.Context) error {
	start := time.Now()
	endpoint := "lstm"
	defer func() {
		metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req := &models.LSTMRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.forecast.PredictLSTM(c.Request().Context(), req.Symbol, req.Lookback, req.Days)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("lstm prediction error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
