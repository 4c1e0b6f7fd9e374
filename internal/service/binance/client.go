package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"CryptoInfo/internal/domain/models"
	drepo "CryptoInfo/internal/domain/repository"
	"CryptoInfo/pkg/logger"
)

const (
	klineInterval = "1d"
	klineLimit    = 1000
)

// Client fetches daily klines and 24h tickers from the Binance REST API.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithRetry(count int, wait time.Duration) Option {
	return func(c *Client) {
		c.http.SetRetryCount(count).SetRetryWaitTime(wait)
	}
}

// New creates a MarketSource backed by the Binance REST API.
func New(baseURL string, timeout time.Duration, opts ...Option) drepo.MarketSource {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	c := &Client{http: http}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Klines pages through /api/v3/klines and returns all daily bars for symbol
// with open time at or after since, in ascending date order.
func (c *Client) Klines(ctx context.Context, symbol string, since time.Time) ([]models.Bar, error) {
	symbol = strings.ToUpper(symbol)
	var bars []models.Bar

	startTime := since.UnixMilli()
	for {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"symbol":    symbol,
				"interval":  klineInterval,
				"limit":     strconv.Itoa(klineLimit),
				"startTime": strconv.FormatInt(startTime, 10),
			}).
			Get("/api/v3/klines")
		if err != nil {
			return nil, fmt.Errorf("binance klines %s: %w", symbol, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("binance klines %s: status %d: %s", symbol, resp.StatusCode(), resp.String())
		}

		var rows [][]json.RawMessage
		if err := json.Unmarshal(resp.Body(), &rows); err != nil {
			return nil, fmt.Errorf("binance klines %s: decode: %w", symbol, err)
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			bar, err := parseKline(symbol, row)
			if err != nil {
				return nil, fmt.Errorf("binance klines %s: %w", symbol, err)
			}
			bars = append(bars, bar)
		}

		if c.log != nil {
			c.log.Debug("fetched klines page",
				logger.String("symbol", symbol),
				logger.Int("count", len(rows)),
			)
		}

		if len(rows) < klineLimit {
			break
		}
		// next page starts one day after the last open time returned
		startTime = bars[len(bars)-1].Date.UnixMilli() + int64(24*time.Hour/time.Millisecond)
	}

	return bars, nil
}

type ticker24hResponse struct {
	Symbol      string `json:"symbol"`
	LastPrice   string `json:"lastPrice"`
	Volume      string `json:"volume"`
	QuoteVolume string `json:"quoteVolume"`
	HighPrice   string `json:"highPrice"`
	LowPrice    string `json:"lowPrice"`
}

// Ticker24h returns the rolling 24h snapshot for symbol.
func (c *Client) Ticker24h(ctx context.Context, symbol string) (*models.Ticker24h, error) {
	symbol = strings.ToUpper(symbol)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		Get("/api/v3/ticker/24hr")
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("binance ticker %s: status %d: %s", symbol, resp.StatusCode(), resp.String())
	}

	var raw ticker24hResponse
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("binance ticker %s: decode: %w", symbol, err)
	}

	t := &models.Ticker24h{Symbol: raw.Symbol}
	for _, f := range []struct {
		dst *float64
		src string
	}{
		{&t.LastPrice, raw.LastPrice},
		{&t.Volume, raw.Volume},
		{&t.QuoteVolume, raw.QuoteVolume},
		{&t.High, raw.HighPrice},
		{&t.Low, raw.LowPrice},
	} {
		v, err := strconv.ParseFloat(f.src, 64)
		if err != nil {
			return nil, fmt.Errorf("binance ticker %s: parse %q: %w", symbol, f.src, err)
		}
		*f.dst = v
	}
	return t, nil
}

// parseKline converts one kline row into a Bar. Binance encodes prices and
// volumes as JSON strings and timestamps as millisecond integers.
func parseKline(symbol string, row []json.RawMessage) (models.Bar, error) {
	if len(row) < 8 {
		return models.Bar{}, fmt.Errorf("kline row has %d fields", len(row))
	}

	var openMs int64
	if err := json.Unmarshal(row[0], &openMs); err != nil {
		return models.Bar{}, fmt.Errorf("open time: %w", err)
	}

	values := make([]float64, 6)
	for i := 1; i <= 5; i++ {
		v, err := parseStringFloat(row[i])
		if err != nil {
			return models.Bar{}, fmt.Errorf("field %d: %w", i, err)
		}
		values[i-1] = v
	}
	quoteVol, err := parseStringFloat(row[7])
	if err != nil {
		return models.Bar{}, fmt.Errorf("quote volume: %w", err)
	}

	base, quote := SplitPair(symbol)
	return models.Bar{
		Date:             time.UnixMilli(openMs).UTC().Truncate(24 * time.Hour),
		Open:             values[0],
		High:             values[1],
		Low:              values[2],
		Close:            values[3],
		Volume:           values[4],
		QuoteAssetVolume: quoteVol,
		Symbol:           symbol,
		BaseAsset:        base,
		QuoteAsset:       quote,
		SymbolUsed:       symbol,
	}, nil
}

func parseStringFloat(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

// SplitPair separates a trading pair into base and quote assets using the
// common Binance quote suffixes. Unknown suffixes leave the quote empty.
func SplitPair(symbol string) (base, quote string) {
	for _, q := range []string{"USDT", "USDC", "BUSD", "BTC", "ETH", "BNB"} {
		if strings.HasSuffix(symbol, q) && len(symbol) > len(q) {
			return strings.TrimSuffix(symbol, q), q
		}
	}
	return symbol, ""
}
