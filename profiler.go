package assetprofile

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/assetprofile/date"
	"github.com/rs/zerolog"
)

// Asset is a recognised ticker and its raw information.
type Asset struct {
	Symbol string
	Info   AssetInfo
}

// Name returns the long name of the asset, its short name, or its symbol.
func (a *Asset) Name() string {
	for _, f := range []string{"longName", "shortName"} {
		if s, ok := a.Info.String(f); ok {
			return s
		}
	}
	return a.Symbol
}

// Currency returns the code of the asset's quotes, possibly a minor unit
// such as "GBp" for pence.
func (a *Asset) Currency() string {
	s, _ := a.Info.String("currency")
	return NormalizeCurrency(s)
}

// Profile is the complete profile of an asset in a target currency.
type Profile struct {
	Asset        *Asset
	On           date.Date
	Rate         ExchangeRate
	Qualitative  QualitativeProfile
	Quantitative QuantitativeProfile
}

// Profiler sequences the provider calls of a profile request. Each call works
// on fresh data: nothing is kept between requests.
type Profiler struct {
	Provider    Provider
	Qualitative QualitativeBuilder
	// QuoteWindow is the window of the current price, LatestWindow when zero.
	QuoteWindow Window
	Log         zerolog.Logger
	// Now returns the date of the report, date.Today when nil.
	Now func() date.Date
}

// NewProfiler returns a Profiler reading p.
func NewProfiler(p Provider, log zerolog.Logger) *Profiler {
	return &Profiler{
		Provider:    p,
		Qualitative: QualitativeBuilder{DescriptionLimit: DescriptionLimit},
		QuoteWindow: LatestWindow,
		Log:         log,
	}
}

// Lookup returns the asset of symbol. Symbols are case insensitive. A symbol
// is recognised only when the provider knows a name for it.
func (p *Profiler) Lookup(ctx context.Context, symbol string) (*Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrTickerNotFound)
	}
	info, err := p.Provider.Lookup(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", symbol, err)
	}
	if !info.Has("shortName") && !info.Has("longName") {
		return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, symbol)
	}
	p.Log.Debug().Str("symbol", symbol).Int("fields", info.Len()).Msg("asset found")
	return &Asset{Symbol: symbol, Info: info}, nil
}

// Rate resolves the rate from the asset's currency into target.
func (p *Profiler) Rate(ctx context.Context, a *Asset, target string) (ExchangeRate, error) {
	return RateResolver{Quoter: p.Provider}.Resolve(ctx, a.Currency(), target)
}

// Profile builds the profile of a in the target currency.
//
// A failure to resolve the exchange rate stops the request with
// ErrRateUnavailable: no monetary figure is ever shown in the wrong currency.
// An empty price history is not an error, the price dependent metrics are
// then unavailable.
func (p *Profiler) Profile(ctx context.Context, a *Asset, target string) (*Profile, error) {
	target = NormalizeCurrency(target)
	rate, err := p.Rate(ctx, a, target)
	if err != nil {
		return nil, err
	}
	w := p.QuoteWindow
	if w == (Window{}) {
		w = LatestWindow
	}
	series, err := p.Provider.History(ctx, a.Symbol, w)
	if err != nil {
		return nil, fmt.Errorf("reading %s prices: %w", a.Symbol, err)
	}
	if len(series) == 0 {
		p.Log.Warn().Str("symbol", a.Symbol).Stringer("window", w).Msg("no current price")
	}
	return &Profile{
		Asset:        a,
		On:           p.Today(),
		Rate:         rate,
		Qualitative:  p.Qualitative.Build(a.Info),
		Quantitative: BuildQuantitative(a.Info, series, a.Currency(), target, rate),
	}, nil
}

// Chart reads the price history of a over period and converts it with rate.
// It returns ErrNoPriceData when the provider has no price for the period.
func (p *Profiler) Chart(ctx context.Context, a *Asset, period Period, rate ExchangeRate) (*Chart, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("invalid period %d", int(period))
	}
	series, err := p.Provider.History(ctx, a.Symbol, period.Window())
	if err != nil {
		return nil, fmt.Errorf("reading %s prices over %s: %w", a.Symbol, period.Label(), err)
	}
	return NewChart(a.Symbol, a.Name(), period, series, rate)
}

// Today returns the date of the reports.
func (p *Profiler) Today() date.Date {
	if p.Now != nil {
		return p.Now()
	}
	return date.Today()
}

