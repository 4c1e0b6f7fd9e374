package usecase

import (
	"context"
	"time"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
	apphttp "CryptoInfo/pkg/http"
	"CryptoInfo/pkg/util"
)

// BarsUseCase provides read access to stored daily bars.
type BarsUseCase struct {
	store domrepo.BarStore
}

func NewBarsUseCase(store domrepo.BarStore) *BarsUseCase {
	return &BarsUseCase{store: store}
}

type ListBarsParams struct {
	Page int
	Size int
}

type ListBarsResult struct {
	Bars  []models.Bar
	Page  int
	Size  int
	Count int
}

// List returns one page of all stored bars.
func (uc *BarsUseCase) List(ctx context.Context, p ListBarsParams) (*ListBarsResult, error) {
	bars, err := uc.store.List(ctx, p.Page, p.Size)
	if err != nil {
		return nil, err
	}
	return &ListBarsResult{
		Bars:  bars,
		Page:  p.Page,
		Size:  p.Size,
		Count: len(bars),
	}, nil
}

// History returns the daily bars for symbol, optionally restricted to the
// inclusive [from, to] date range. Date strings use the 2006-01-02 layout.
func (uc *BarsUseCase) History(ctx context.Context, symbol, from, to string) ([]models.Bar, error) {
	if from == "" && to == "" {
		bars, err := uc.store.FetchHistory(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if len(bars) == 0 {
			return nil, apphttp.NotFoundErrorf("no data found for symbol: %s", symbol)
		}
		return bars, nil
	}

	fromTime := time.Time{}
	toTime := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if from != "" {
		t, ok := util.ParseDate(from)
		if !ok {
			return nil, apphttp.BadRequestErrorf("invalid from date: %s", from)
		}
		fromTime = t
	}
	if to != "" {
		t, ok := util.ParseDate(to)
		if !ok {
			return nil, apphttp.BadRequestErrorf("invalid to date: %s", to)
		}
		toTime = t
	}
	if fromTime.After(toTime) {
		return nil, apphttp.BadRequestError("from must not be after to")
	}

	bars, err := uc.store.FetchRange(ctx, symbol, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, apphttp.NotFoundErrorf("no data found for symbol: %s", symbol)
	}
	return bars, nil
}

// ByID returns one bar by its row id.
func (uc *BarsUseCase) ByID(ctx context.Context, id int64) (*models.Bar, error) {
	bar, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bar == nil {
		return nil, apphttp.NotFoundErrorf("no bar with id: %d", id)
	}
	return bar, nil
}

// Search returns the distinct stored symbols matching query.
func (uc *BarsUseCase) Search(ctx context.Context, query string) ([]string, error) {
	return uc.store.SearchSymbols(ctx, query)
}
