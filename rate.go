package assetprofile

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts one unit of From into Value units of To.
type ExchangeRate struct {
	From, To string
	Value    decimal.Decimal
}

// Identity returns the rate of a currency to itself.
func Identity(currency string) ExchangeRate {
	return ExchangeRate{From: currency, To: currency, Value: decimal.NewFromInt(1)}
}

// IsValid reports whether the rate can be used for conversions.
func (r ExchangeRate) IsValid() bool { return r.Value.IsPositive() && r.To != "" }

// Apply converts an amount expressed in From into To.
func (r ExchangeRate) Apply(amount decimal.Decimal) decimal.Decimal { return amount.Mul(r.Value) }

// String returns the rate as "0.9234 EUR/USD".
func (r ExchangeRate) String() string {
	return fmt.Sprintf("%s %s/%s", r.Value.StringFixed(4), r.To, r.From)
}

// Quoter quotes the price history of a currency pair.
type Quoter interface {
	Quote(ctx context.Context, base, quote string) (PriceSeries, error)
}

// RateResolver resolves exchange rates through a Quoter. It holds no state:
// every call queries the provider again.
type RateResolver struct {
	Quoter Quoter
}

// Resolve returns the rate converting from into to.
//
// Identical currencies resolve to 1 without any external call. Otherwise the
// latest close of the pair is used, and any failure to obtain a positive
// quote is reported as ErrRateUnavailable. Minor units ("GBp") are quoted
// through their ISO currency and scaled: GBp to GBP is 0.01 without any call.
func (r RateResolver) Resolve(ctx context.Context, from, to string) (ExchangeRate, error) {
	from, to = NormalizeCurrency(from), NormalizeCurrency(to)
	if from == "" || to == "" {
		return ExchangeRate{}, fmt.Errorf("%w: missing currency in pair %q/%q", ErrRateUnavailable, from, to)
	}
	if from == to {
		return Identity(to), nil
	}
	base, fromUnit := MajorUnit(from)
	quote, toUnit := MajorUnit(to)
	scale := fromUnit.Div(toUnit)
	if base == quote {
		return ExchangeRate{From: from, To: to, Value: scale}, nil
	}
	if r.Quoter == nil {
		return ExchangeRate{}, fmt.Errorf("%w: no quote provider for %s%s", ErrRateUnavailable, base, quote)
	}
	series, err := r.Quoter.Quote(ctx, base, quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: quoting %s%s: %w", ErrRateUnavailable, base, quote, err)
	}
	last, ok := series.Last()
	if !ok {
		return ExchangeRate{}, fmt.Errorf("%w: no history for %s%s", ErrRateUnavailable, base, quote)
	}
	if !last.Close.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("%w: invalid quote %s for %s%s", ErrRateUnavailable, last.Close, base, quote)
	}
	return ExchangeRate{From: from, To: to, Value: last.Close.Mul(scale)}, nil
}
