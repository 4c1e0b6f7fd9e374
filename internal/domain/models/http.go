package models

// HTTP request bindings for the API layer. Defaults are applied with
// creasty/defaults, constraints with go-playground/validator.

// ListBarsRequest pages through all stored bars.
type ListBarsRequest struct {
	Page int `query:"page" default:"0" validate:"gte=0"`
	Size int `query:"size" default:"1000" validate:"gt=0"`
}

// SymbolHistoryRequest fetches one symbol's history, optionally date-bounded.
// From and To are 2006-01-02 dates; both must be present to filter.
type SymbolHistoryRequest struct {
	Symbol string `param:"symbol" validate:"required"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// SearchSymbolsRequest looks up distinct symbol names by substring.
type SearchSymbolsRequest struct {
	Query string `query:"query" validate:"required,min=1"`
}

// AnalysisRequest asks for technical analysis of a symbol at a granularity.
// Timeframe is case-insensitive; unknown values are rejected by the handler.
type AnalysisRequest struct {
	Symbol    string `param:"symbol" validate:"required"`
	Timeframe string `query:"timeframe" default:"MONTHLY"`
}

// PredictionRequest asks for the regression forecast of a symbol.
type PredictionRequest struct {
	Symbol string `param:"symbol" validate:"required"`
}

// LSTMRequest asks for the LSTM forecast. Bounds follow the original script
// contract: lookback window of 10..100 days, horizon of 1..30 days.
type LSTMRequest struct {
	Symbol   string `param:"symbol" validate:"required"`
	Lookback int    `query:"lookback" default:"30" validate:"gte=10,lte=100"`
	Days     int    `query:"days" default:"7" validate:"gte=1,lte=30"`
}
