package models

import "time"

// Bar is one daily OHLCV observation for one symbol, as stored in the
// crypto_coins table. Date is a calendar day; the time component is always
// midnight UTC.
type Bar struct {
	ID     int64     `db:"id" json:"id"`
	Date   time.Time `db:"date" json:"date"`
	Open   float64   `db:"open" json:"open"`
	High   float64   `db:"high" json:"high"`
	Low    float64   `db:"low" json:"low"`
	Close  float64   `db:"close" json:"close"`
	Volume float64   `db:"volume" json:"volume"`

	QuoteAssetVolume float64 `db:"quote_asset_volume" json:"quoteAssetVolume"`

	Symbol     string `db:"symbol" json:"symbol"`
	BaseAsset  string `db:"base_asset" json:"baseAsset"`
	QuoteAsset string `db:"quote_asset" json:"quoteAsset"`
	SymbolUsed string `db:"symbol_used" json:"symbolUsed"`

	// 24h ticker snapshot captured at download time.
	LastPrice24h   float64 `db:"last_price_24h" json:"lastPrice_24h"`
	Volume24h      float64 `db:"volume_24h" json:"volume_24h"`
	QuoteVolume24h float64 `db:"quote_volume_24h" json:"quoteVolume_24h"`
	High24h        float64 `db:"high_24h" json:"high_24h"`
	Low24h         float64 `db:"low_24h" json:"low_24h"`
}

// Valid reports whether the bar carries usable OHLC values. Bars failing this
// check are skipped during series conversion rather than reported as errors.
func (b Bar) Valid() bool {
	if b.Date.IsZero() {
		return false
	}
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
		if v < 0 || v != v { // negative or NaN
			return false
		}
	}
	return true
}
