package ta

import (
	talib "github.com/markcheno/go-talib"

	"CryptoInfo/internal/domain/models"
	"CryptoInfo/pkg/util"
)

// Group separates oscillators from moving-average style indicators; each
// group gets its own summary.
type Group int

const (
	GroupOscillator Group = iota
	GroupMovingAverage
)

// definition describes one indicator declaratively: how many bars it needs,
// how to compute its latest value, and how to classify it. The evaluator
// iterates this table and silently omits entries whose minimum is unmet.
type definition struct {
	name     string
	label    string
	group    Group
	minBars  int // series length must exceed minBars-1, i.e. len >= minBars
	decimals int
	compute  func(s Series) float64
	classify func(v float64, s Series) models.Signal
}

const maPeriod = 20 // all moving averages share this period

var definitions = []definition{
	{
		name: "RSI", label: "Relative Strength Index (14)",
		group: GroupOscillator, minBars: 15, decimals: 2,
		compute:  func(s Series) float64 { return last(talib.Rsi(s.Closes, 14)) },
		classify: func(v float64, _ Series) models.Signal { return RSISignal(v) },
	},
	{
		name: "MACD", label: "MACD Level (12, 26)",
		group: GroupOscillator, minBars: 27, decimals: 2,
		compute: func(s Series) float64 {
			macd, _, _ := talib.Macd(s.Closes, 12, 26, 9)
			return last(macd)
		},
		classify: func(v float64, _ Series) models.Signal { return MACDSignal(v) },
	},
	{
		name: "STOCH", label: "Stochastic %K (14, 3, 3)",
		group: GroupOscillator, minBars: 18, decimals: 2,
		compute: func(s Series) float64 {
			k, _ := talib.StochF(s.Highs, s.Lows, s.Closes, 14, 3, talib.SMA)
			return last(k)
		},
		classify: func(v float64, _ Series) models.Signal { return StochasticSignal(v) },
	},
	{
		name: "ADX", label: "Average Directional Index (14)",
		group: GroupOscillator, minBars: 29, decimals: 2,
		compute:  func(s Series) float64 { return last(talib.Adx(s.Highs, s.Lows, s.Closes, 14)) },
		classify: func(v float64, _ Series) models.Signal { return ADXSignal(v) },
	},
	{
		name: "CCI", label: "Commodity Channel Index (20)",
		group: GroupOscillator, minBars: 21, decimals: 2,
		compute:  func(s Series) float64 { return last(talib.Cci(s.Highs, s.Lows, s.Closes, 20)) },
		classify: func(v float64, _ Series) models.Signal { return CCISignal(v) },
	},
	{
		name: "SMA", label: "Simple Moving Average",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 2,
		compute:  func(s Series) float64 { return last(talib.Sma(s.Closes, maPeriod)) },
		classify: func(v float64, s Series) models.Signal { return CrossSignal(s.LastClose(), v) },
	},
	{
		name: "EMA", label: "Exponential Moving Average",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 2,
		compute:  func(s Series) float64 { return last(talib.Ema(s.Closes, maPeriod)) },
		classify: func(v float64, s Series) models.Signal { return CrossSignal(s.LastClose(), v) },
	},
	{
		name: "WMA", label: "Weighted Moving Average",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 2,
		compute:  func(s Series) float64 { return last(talib.Wma(s.Closes, maPeriod)) },
		classify: func(v float64, s Series) models.Signal { return CrossSignal(s.LastClose(), v) },
	},
	{
		name: "BB_UPPER", label: "Bollinger Bands Upper",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 2,
		compute: func(s Series) float64 {
			upper, _, _ := talib.BBands(s.Closes, maPeriod, 2.0, 2.0, talib.SMA)
			return last(upper)
		},
		classify: func(float64, Series) models.Signal { return models.SignalSell },
	},
	{
		name: "BB_MIDDLE", label: "Bollinger Bands Middle",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 2,
		compute: func(s Series) float64 {
			_, middle, _ := talib.BBands(s.Closes, maPeriod, 2.0, 2.0, talib.SMA)
			return last(middle)
		},
		classify: func(float64, Series) models.Signal { return models.SignalNeutral },
	},
	{
		name: "BB_LOWER", label: "Bollinger Bands Lower",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 2,
		compute: func(s Series) float64 {
			_, _, lower := talib.BBands(s.Closes, maPeriod, 2.0, 2.0, talib.SMA)
			return last(lower)
		},
		classify: func(float64, Series) models.Signal { return models.SignalBuy },
	},
	{
		name: "VOLUME_SMA", label: "Volume Simple Moving Average",
		group: GroupMovingAverage, minBars: maPeriod + 1, decimals: 0,
		compute:  func(s Series) float64 { return last(talib.Sma(s.Volumes, maPeriod)) },
		classify: func(v float64, s Series) models.Signal { return CrossSignal(s.LastVolume(), v) },
	},
}

// Evaluate computes every indicator the series is long enough for and returns
// the classified readings, split into the oscillator and moving-average
// groups. Indicators whose minimum bar count is unmet are omitted, not
// reported as errors.
func Evaluate(bars []models.Bar) (oscillators, movingAverages []models.IndicatorReading) {
	s := NewSeries(bars)

	for _, def := range definitions {
		if s.Len() < def.minBars {
			continue
		}
		value := def.compute(s)
		reading := models.IndicatorReading{
			Name:        def.name,
			Value:       util.Round(value, def.decimals),
			Signal:      def.classify(value, s),
			DisplayName: def.label,
		}
		switch def.group {
		case GroupOscillator:
			oscillators = append(oscillators, reading)
		case GroupMovingAverage:
			movingAverages = append(movingAverages, reading)
		}
	}

	return oscillators, movingAverages
}
