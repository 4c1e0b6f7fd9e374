package models

// Ticker24h is a rolling 24h market snapshot for one symbol.
type Ticker24h struct {
	Symbol      string
	LastPrice   float64
	Volume      float64
	QuoteVolume float64
	High        float64
	Low         float64
}
