package api

import (
	"encoding/json"
	"net/http"
	"time"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
	icache "CryptoInfo/internal/service/cache"
	"CryptoInfo/internal/service/metrics"
	"CryptoInfo/internal/service/ratelimit"
	"CryptoInfo/internal/usecase"
	xhttp "CryptoInfo/pkg/http"
	xlogger "CryptoInfo/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler serves technical analysis verdicts. Responses are cached
// per symbol and timeframe and requests are rate limited per client.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analysis *usecase.AnalysisUseCase
	cache    icache.BytesCache
	rl       *ratelimit.Limiter
	cacheTTL time.Duration
	capacity float64
	refill   float64
}

func NewAnalysisHandler(logger *xlogger.Logger, analysis *usecase.AnalysisUseCase) *AnalysisHandler {
	metrics.Register()
	return &AnalysisHandler{
		logger:   logger,
		analysis: analysis,
		rl:       ratelimit.New(),
		cacheTTL: 60 * time.Second,
		capacity: 5,
		refill:   2,
	}
}

func (h *AnalysisHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	if ttl > 0 {
		h.cacheTTL = ttl
	}
}

func (h *AnalysisHandler) SetRateLimit(capacity, refillPerSec float64) {
	if capacity > 0 {
		h.capacity = capacity
	}
	if refillPerSec > 0 {
		h.refill = refillPerSec
	}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/technical/:symbol", h.Technical)
}

func (h *AnalysisHandler) Technical(c echo.Context) error {
	start := time.Now()
	endpoint := "technical"
	defer func() {
		metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	tf := domrepo.NormalizeTimeframe(req.Timeframe)
	if !domrepo.IsValidTimeframe(tf) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid timeframe: %s", req.Timeframe))
	}

	if !h.rl.Allow(c.RealIP()+":technical", h.capacity, h.refill) {
		h.logger.Warn("technical rate limited", xlogger.String("remote", c.RealIP()))
		return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "rate limited"})
	}

	cacheKey := "technical:" + req.Symbol + ":" + string(tf)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("analysis cache get error", xlogger.Error(err))
		} else if ok {
			metrics.CacheHits.WithLabelValues(endpoint).Inc()
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	res, err := h.analysis.Analyze(c.Request().Context(), req.Symbol, tf)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("technical analysis error",
			xlogger.String("symbol", req.Symbol),
			xlogger.String("timeframe", string(tf)),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}

	if h.cache != nil {
		envelope := xhttp.APIResponse{
			Status:  http.StatusOK,
			Message: http.StatusText(http.StatusOK),
			Data:    res,
		}
		if b, err := json.Marshal(envelope); err == nil {
			if err := h.cache.SetBytes(cacheKey, b, h.cacheTTL); err != nil {
				h.logger.Warn("analysis cache set error", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, res)
}
