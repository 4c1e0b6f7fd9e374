package usecase

import (
	"context"
	"sort"

	"CryptoInfo/internal/domain/models"
	domrepo "CryptoInfo/internal/domain/repository"
	"CryptoInfo/internal/services/ta"
	"CryptoInfo/internal/services/timeframe"
	apphttp "CryptoInfo/pkg/http"
)

// minAnalysisBars is the smallest aggregated series the indicator set can be
// evaluated on. Shorter histories produce too few stable readings.
const minAnalysisBars = 50

// AnalysisUseCase turns stored daily history into a classified technical
// analysis for one symbol and timeframe.
type AnalysisUseCase struct {
	store domrepo.BarStore
}

func NewAnalysisUseCase(store domrepo.BarStore) *AnalysisUseCase {
	return &AnalysisUseCase{store: store}
}

// Analyze loads the full daily history for symbol, aggregates it to tf and
// evaluates the indicator set on the result.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, symbol string, tf domrepo.Timeframe) (*models.TechnicalAnalysis, error) {
	if !domrepo.IsValidTimeframe(tf) {
		return nil, apphttp.BadRequestErrorf("invalid timeframe: %s", tf)
	}

	bars, err := uc.store.FetchHistory(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, apphttp.BadRequestErrorf("no data found for symbol: %s", symbol)
	}

	// history reads come back date-ordered, but aggregation depends on it
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	aggregated := timeframe.Aggregate(bars, tf)
	if len(aggregated) < minAnalysisBars {
		return nil, apphttp.BadRequestErrorf(
			"insufficient data for %s analysis: have %d bars, need at least %d",
			tf, len(aggregated), minAnalysisBars,
		)
	}

	oscillators, movingAverages := ta.Evaluate(aggregated)

	return &models.TechnicalAnalysis{
		Symbol:               bars[len(bars)-1].Symbol,
		Timeframe:            string(tf),
		OscillatorSummary:    ta.Summarize(oscillators),
		MovingAverageSummary: ta.Summarize(movingAverages),
		Oscillators:          oscillators,
		MovingAverages:       movingAverages,
	}, nil
}
