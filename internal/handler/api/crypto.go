package api

import (
	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
	"CryptoInfo/internal/usecase"
	xhttp "CryptoInfo/pkg/http"
	xlogger "CryptoInfo/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CryptoHandler serves stored daily bar data.
type CryptoHandler struct {
	logger *xlogger.Logger
	bars   *usecase.BarsUseCase
	store  domrepo.BarStore
}

func NewCryptoHandler(logger *xlogger.Logger, bars *usecase.BarsUseCase, store domrepo.BarStore) *CryptoHandler {
	return &CryptoHandler{logger: logger, bars: bars, store: store}
}

func (h *CryptoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/health", h.Health)
	g.GET("", h.List)
	g.GET("/all", h.List)
	g.GET("/symbol/:symbol", h.History)
	g.GET("/id/:id", h.ByID)
	g.GET("/search", h.Search)
}

func (h *CryptoHandler) Health(c echo.Context) error {
	if err := h.store.Health(c.Request().Context()); err != nil {
		h.logger.Error("health check failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("database unavailable"))
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *CryptoHandler) List(c echo.Context) error {
	req := &models.ListBarsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.bars.List(c.Request().Context(), usecase.ListBarsParams{
		Page: req.Page,
		Size: req.Size,
	})
	if err != nil {
		h.logger.Error("list bars error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, res.Bars, int64(res.Count))
}

func (h *CryptoHandler) History(c echo.Context) error {
	req := &models.SymbolHistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	bars, err := h.bars.History(c.Request().Context(), req.Symbol, req.From, req.To)
	if err != nil {
		h.logger.Error("symbol history error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, bars)
}

func (h *CryptoHandler) ByID(c echo.Context) error {
	req := &struct {
		ID int64 `param:"id" validate:"required,gt=0"`
	}{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	bar, err := h.bars.ByID(c.Request().Context(), req.ID)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, bar)
}

func (h *CryptoHandler) Search(c echo.Context) error {
	req := &models.SearchSymbolsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	symbols, err := h.bars.Search(c.Request().Context(), req.Query)
	if err != nil {
		h.logger.Error("symbol search error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, symbols)
}
