package models

// Signal classifies one indicator reading.
type Signal string

const (
	SignalBuy     Signal = "BUY"
	SignalSell    Signal = "SELL"
	SignalNeutral Signal = "NEUTRAL"

	// Overall verdicts for a group of readings.
	SignalStrongBuy  Signal = "STRONG_BUY"
	SignalStrongSell Signal = "STRONG_SELL"
)

// IndicatorReading is one computed indicator value at the latest point of an
// aggregated series, with its classified signal.
type IndicatorReading struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Signal      Signal  `json:"signal"`
	DisplayName string  `json:"displayName"`
}

// Summary rolls up the signals of one indicator group.
type Summary struct {
	OverallSignal Signal `json:"overallSignal"`
	BuyCount      int    `json:"buyCount"`
	SellCount     int    `json:"sellCount"`
	NeutralCount  int    `json:"neutralCount"`
}

// TechnicalAnalysis is the full response for one symbol and timeframe:
// oscillator and moving-average readings plus their independent summaries.
type TechnicalAnalysis struct {
	Symbol               string             `json:"symbol"`
	Timeframe            string             `json:"timeframe"`
	OscillatorSummary    Summary            `json:"oscillatorSummary"`
	MovingAverageSummary Summary            `json:"movingAverageSummary"`
	Oscillators          []IndicatorReading `json:"oscillators"`
	MovingAverages       []IndicatorReading `json:"movingAverages"`
}
