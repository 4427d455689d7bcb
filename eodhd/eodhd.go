// Package eodhd implements a market data provider backed by the EOD
// Historical Data API (https://eodhd.com).
//
// Tickers use EODHD's "CODE.EXCHANGE" format (e.g. "MCD.US") and currency
// pairs are quoted as "FROMTO.FOREX".
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/date"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the address of the EODHD API.
const DefaultBaseURL = "https://eodhd.com/api"

// Client is an EODHD provider.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
	Log     zerolog.Logger
	// Now returns the current time, time.Now when nil.
	Now func() time.Time
}

// New returns a client of the EODHD API authenticated by apiKey.
func New(apiKey string, log zerolog.Logger) *Client {
	log = log.With().Str("provider", "eodhd").Logger()
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTP:    newHTTPClient(log),
		Log:     log,
	}
}

var _ assetprofile.Provider = (*Client)(nil)

// Lookup returns the fundamentals of ticker, and its previous close when the
// live endpoint knows it.
func (c *Client) Lookup(ctx context.Context, ticker string) (assetprofile.AssetInfo, error) {
	doc, err := c.fetchFundamentals(ctx, ticker)
	if errors.Is(err, errNotFound) {
		return assetprofile.AssetInfo{}, fmt.Errorf("%w: %s", assetprofile.ErrTickerNotFound, ticker)
	}
	if err != nil {
		return assetprofile.AssetInfo{}, fmt.Errorf("reading eodhd fundamentals of %q: %w", ticker, err)
	}
	fields := extract(doc)
	fields["symbol"] = ticker

	prev, err := c.fetchPreviousClose(ctx, ticker)
	if err != nil {
		c.Log.Warn().Err(err).Str("ticker", ticker).Msg("no previous close")
	} else {
		fields["previousClose"] = prev
	}
	c.Log.Debug().Str("ticker", ticker).Int("fields", len(fields)).Msg("fundamentals")
	return assetprofile.NewAssetInfo(fields), nil
}

// History returns the prices of ticker over w. Hourly windows are read from
// the intraday endpoint, longer intervals from the end of day endpoint.
func (c *Client) History(ctx context.Context, ticker string, w assetprofile.Window) (assetprofile.PriceSeries, error) {
	now := c.now()
	var bars []bar
	var err error
	switch w.Interval {
	case "1h":
		bars, err = c.fetchIntraday(ctx, ticker, "1h", since(w.Range, now))
	default:
		period, ok := eodPeriods[w.Interval]
		if !ok {
			return nil, fmt.Errorf("unsupported eodhd interval %q", w.Interval)
		}
		from := date.Date{}
		if w.Range != "max" {
			from = date.Of(since(w.Range, now))
		}
		bars, err = c.fetchEOD(ctx, ticker, period, from)
	}
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading eodhd prices of %q over %s: %w", ticker, w, err)
	}

	series := make(assetprofile.PriceSeries, 0, len(bars))
	for _, b := range bars {
		if !b.Close.IsPositive() {
			continue
		}
		series = append(series, assetprofile.PricePoint{Time: b.Time, Close: b.Close, AdjClose: b.AdjClose})
	}
	c.Log.Debug().Str("ticker", ticker).Stringer("window", w).Int("bars", len(series)).Msg("history")
	return series, nil
}

// Quote returns the latest rates of the currency pair.
func (c *Client) Quote(ctx context.Context, base, quote string) (assetprofile.PriceSeries, error) {
	return c.History(ctx, ForexTicker(base, quote), assetprofile.LatestWindow)
}

// ForexTicker returns the EODHD ticker of a currency pair ("EURUSD.FOREX").
func ForexTicker(base, quote string) string {
	// The Ticker for forex is in the format "fromCurrency+toCurrency.FOREX".
	return strings.ToUpper(base+quote) + ".FOREX"
}

var eodPeriods = map[string]string{
	"1d":  "d",
	"1wk": "w",
	"1mo": "m",
}

// since returns the start of a lookback range ending at now. The one day
// range looks a week back so that the latest close is found over weekends
// and holidays.
func since(rangeCode string, now time.Time) time.Time {
	switch rangeCode {
	case "1d":
		return now.AddDate(0, 0, -7)
	case "3d":
		return now.AddDate(0, 0, -3)
	case "5d":
		return now.AddDate(0, 0, -5)
	case "1mo":
		return now.AddDate(0, -1, 0)
	case "3mo":
		return now.AddDate(0, -3, 0)
	case "6mo":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "10y":
		return now.AddDate(-10, 0, 0)
	default:
		return time.Time{}
	}
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
