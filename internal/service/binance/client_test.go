package binance

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseKline(t *testing.T) {
	raw := `[1719792000000,"61000.5","62500.0","60800.0","62000.25","1234.5",1719878399999,"76543210.9",100,"600.0","37000000.0","0"]`
	var row []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatal(err)
	}

	bar, err := parseKline("BTCUSDT", row)
	if err != nil {
		t.Fatal(err)
	}

	wantDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if !bar.Date.Equal(wantDate) {
		t.Errorf("date = %v, want %v", bar.Date, wantDate)
	}
	if bar.Open != 61000.5 || bar.High != 62500.0 || bar.Low != 60800.0 || bar.Close != 62000.25 {
		t.Errorf("ohlc = %v/%v/%v/%v", bar.Open, bar.High, bar.Low, bar.Close)
	}
	if bar.Volume != 1234.5 {
		t.Errorf("volume = %v", bar.Volume)
	}
	if bar.QuoteAssetVolume != 76543210.9 {
		t.Errorf("quote volume = %v", bar.QuoteAssetVolume)
	}
	if bar.BaseAsset != "BTC" || bar.QuoteAsset != "USDT" {
		t.Errorf("assets = %s/%s", bar.BaseAsset, bar.QuoteAsset)
	}
}

func TestParseKlineShortRow(t *testing.T) {
	var row []json.RawMessage
	_ = json.Unmarshal([]byte(`[1719792000000,"1","2"]`), &row)
	if _, err := parseKline("BTCUSDT", row); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		symbol, base, quote string
	}{
		{"BTCUSDT", "BTC", "USDT"},
		{"ETHBTC", "ETH", "BTC"},
		{"SOLBUSD", "SOL", "BUSD"},
		{"ADABNB", "ADA", "BNB"},
		{"WEIRD", "WEIRD", ""},
		{"USDT", "USDT", ""},
	}
	for _, tt := range tests {
		base, quote := SplitPair(tt.symbol)
		if base != tt.base || quote != tt.quote {
			t.Errorf("SplitPair(%s) = %s/%s, want %s/%s", tt.symbol, base, quote, tt.base, tt.quote)
		}
	}
}
