// Package yahoo implements a market data provider backed by Yahoo Finance,
// through the go-yfinance client.
package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/assetprofile"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/wnjoon/go-yfinance/pkg/models"
	"github.com/wnjoon/go-yfinance/pkg/ticker"
)

// source is the part of a go-yfinance ticker used by the provider.
type source interface {
	Info() (*models.Info, error)
	History(params models.HistoryParams) ([]models.Bar, error)
}

// opener opens a source for a Yahoo symbol. The returned func releases it.
type opener func(symbol string) (source, func(), error)

func openTicker(symbol string) (source, func(), error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return nil, nil, err
	}
	return t, func() { t.Close() }, nil
}

// Provider reads asset information and prices from Yahoo Finance.
//
// Calls are not throttled: wrap the provider with assetprofile.Throttle.
type Provider struct {
	log  zerolog.Logger
	open opener
}

// New returns a Yahoo Finance provider.
func New(log zerolog.Logger) *Provider {
	return &Provider{
		log:  log.With().Str("provider", "yahoo").Logger(),
		open: openTicker,
	}
}

var _ assetprofile.Provider = (*Provider)(nil)

// Lookup returns the information of symbol.
func (p *Provider) Lookup(ctx context.Context, symbol string) (assetprofile.AssetInfo, error) {
	if err := ctx.Err(); err != nil {
		return assetprofile.AssetInfo{}, err
	}
	t, done, err := p.open(symbol)
	if err != nil {
		return assetprofile.AssetInfo{}, fmt.Errorf("opening yahoo ticker %q: %w", symbol, err)
	}
	defer done()

	info, err := t.Info()
	if err != nil {
		return assetprofile.AssetInfo{}, fmt.Errorf("%w: %s: %w", assetprofile.ErrTickerNotFound, symbol, err)
	}
	if info == nil {
		return assetprofile.AssetInfo{}, fmt.Errorf("%w: %s", assetprofile.ErrTickerNotFound, symbol)
	}
	fields, err := flatten(info)
	if err != nil {
		return assetprofile.AssetInfo{}, fmt.Errorf("decoding yahoo info of %q: %w", symbol, err)
	}
	p.log.Debug().Str("symbol", symbol).Int("fields", len(fields)).Msg("info")
	return assetprofile.NewAssetInfo(fields), nil
}

// History returns the price history of symbol over w.
func (p *Provider) History(ctx context.Context, symbol string, w assetprofile.Window) (assetprofile.PriceSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, done, err := p.open(symbol)
	if err != nil {
		return nil, fmt.Errorf("opening yahoo ticker %q: %w", symbol, err)
	}
	defer done()

	bars, err := t.History(models.HistoryParams{
		Period:   w.Range,
		Interval: w.Interval,
	})
	if err != nil {
		return nil, fmt.Errorf("reading yahoo history of %q over %s: %w", symbol, w, err)
	}
	series := make(assetprofile.PriceSeries, 0, len(bars))
	for _, bar := range bars {
		if bar.Close <= 0 {
			// yahoo reports bars without trades as zeros.
			continue
		}
		pt := assetprofile.PricePoint{Time: bar.Date, Close: decimal.NewFromFloat(bar.Close)}
		if bar.AdjClose > 0 {
			pt.AdjClose = decimal.NewNullDecimal(decimal.NewFromFloat(bar.AdjClose))
		}
		series = append(series, pt)
	}
	p.log.Debug().Str("symbol", symbol).Stringer("window", w).Int("bars", len(series)).Msg("history")
	return series, nil
}

// Quote returns the latest rates of the currency pair base/quote.
func (p *Provider) Quote(ctx context.Context, base, quote string) (assetprofile.PriceSeries, error) {
	return p.History(ctx, ForexSymbol(base, quote), assetprofile.LatestWindow)
}

// ForexSymbol returns the Yahoo symbol of a currency pair ("EURUSD=X").
func ForexSymbol(base, quote string) string {
	return strings.ToUpper(base+quote) + "=X"
}

// canonical maps the lower case spelling of every field read by the profile
// to its expected spelling. go-yfinance field names use Go initialisms
// ("EPSForward") that a plain first letter lowering would not restore.
var canonical = func() map[string]string {
	m := make(map[string]string)
	for _, f := range assetprofile.Fields() {
		m[strings.ToLower(f)] = f
	}
	return m
}()

// flatten returns the scalar fields of v, keyed by their camel case name.
// Zero numbers, false and empty strings are dropped: go-yfinance reports
// missing values as zero values.
func flatten(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case json.Number:
			d, err := decimal.NewFromString(x.String())
			if err != nil || d.IsZero() {
				continue
			}
			fields[fieldName(k)] = d
		case string:
			if strings.TrimSpace(x) == "" {
				continue
			}
			fields[fieldName(k)] = x
		}
	}
	return fields, nil
}

// fieldName returns the camel case name of a go-yfinance field.
func fieldName(k string) string {
	if f, ok := canonical[strings.ToLower(k)]; ok {
		return f
	}
	r, size := utf8.DecodeRuneInString(k)
	return string(unicode.ToLower(r)) + k[size:]
}
