package ta

import "CryptoInfo/internal/domain/models"

// Per-indicator classification rules. Thresholds are fixed for compatibility
// with downstream consumers; changing them changes the meaning of the API.

// RSISignal: overbought at 70, oversold at 30.
func RSISignal(v float64) models.Signal {
	switch {
	case v >= 70:
		return models.SignalSell
	case v <= 30:
		return models.SignalBuy
	default:
		return models.SignalNeutral
	}
}

// MACDSignal: positive MACD level is bullish. There is no neutral band.
func MACDSignal(v float64) models.Signal {
	if v > 0 {
		return models.SignalBuy
	}
	return models.SignalSell
}

// StochasticSignal: %K overbought at 80, oversold at 20.
func StochasticSignal(k float64) models.Signal {
	switch {
	case k >= 80:
		return models.SignalSell
	case k <= 20:
		return models.SignalBuy
	default:
		return models.SignalNeutral
	}
}

// ADXSignal: trend strength above 25 confirms, 20..25 is indecisive.
func ADXSignal(v float64) models.Signal {
	switch {
	case v > 25:
		return models.SignalBuy
	case v > 20:
		return models.SignalNeutral
	default:
		return models.SignalSell
	}
}

// CCISignal: beyond +/-100 the instrument is stretched.
func CCISignal(v float64) models.Signal {
	switch {
	case v > 100:
		return models.SignalSell
	case v < -100:
		return models.SignalBuy
	default:
		return models.SignalNeutral
	}
}

// CrossSignal compares the current price (or volume) to its trailing average.
func CrossSignal(current, average float64) models.Signal {
	if current > average {
		return models.SignalBuy
	}
	return models.SignalSell
}

// Summarize counts BUY/SELL/NEUTRAL over a group of readings and derives the
// overall verdict: a strict majority of buys over everything else upgrades to
// STRONG_BUY when buys more than double the sells, and symmetrically for
// sells. Anything less decisive stays NEUTRAL.
func Summarize(readings []models.IndicatorReading) models.Summary {
	var buy, sell, neutral int
	for _, r := range readings {
		switch r.Signal {
		case models.SignalBuy:
			buy++
		case models.SignalSell:
			sell++
		default:
			neutral++
		}
	}

	overall := models.SignalNeutral
	if buy > sell+neutral {
		if buy > sell*2 {
			overall = models.SignalStrongBuy
		} else {
			overall = models.SignalBuy
		}
	} else if sell > buy+neutral {
		if sell > buy*2 {
			overall = models.SignalStrongSell
		} else {
			overall = models.SignalSell
		}
	}

	return models.Summary{
		OverallSignal: overall,
		BuyCount:      buy,
		SellCount:     sell,
		NeutralCount:  neutral,
	}
}
