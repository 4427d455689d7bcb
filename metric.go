package assetprofile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tells how a Metric value is computed and displayed.
type Kind int

const (
	// Text is a plain string value (dates, currency codes).
	Text Kind = iota
	// Monetary is an amount in the asset's currency, converted into the target currency.
	Monetary
	// Ratio is a currency independent number.
	Ratio
	// Percent is a currency independent fraction, displayed multiplied by 100.
	Percent
	// Count is a currency independent quantity with a unit (shares, employees).
	Count
	// Rate is the exchange rate itself.
	Rate
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Monetary:
		return "monetary"
	case Ratio:
		return "ratio"
	case Percent:
		return "percent"
	case Count:
		return "count"
	case Rate:
		return "rate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SignClass classifies signed metrics for presentation.
type SignClass int

const (
	// Unsigned metrics carry no sign styling.
	Unsigned SignClass = iota
	// NonPositive values (zero included) render in a "loss" style.
	NonPositive
	// Positive values render in a "gain" style with an explicit '+'.
	Positive
)

func (s SignClass) String() string {
	switch s {
	case NonPositive:
		return "non-positive"
	case Positive:
		return "positive"
	default:
		return "unsigned"
	}
}

// Classify returns the SignClass of v.
func Classify(v decimal.Decimal) SignClass {
	if v.IsPositive() {
		return Positive
	}
	return NonPositive
}

// Metric is a labelled derived value, either unavailable or present.
//
// A present monetary Metric holds the raw value in the asset's currency and
// the converted value in the target currency, both already rounded. Other
// kinds only use Raw (Converted equals Raw).
type Metric struct {
	Label     string
	Kind      Kind
	Valid     bool
	Raw       decimal.Decimal
	Currency  string
	Converted decimal.Decimal
	Target    string
	Places    int32
	Unit      string // e.g. "shares", used by Count metrics.
	Text      string // value of Text metrics.
	Sign      SignClass
}

// Unavailable returns a Metric with no value.
func Unavailable(label string, kind Kind) Metric {
	return Metric{Label: label, Kind: kind}
}

// Present returns a monetary Metric. raw is expressed in rate.From and
// converted with rate; both values are rounded to places decimals.
func Present(label string, raw decimal.Decimal, rate ExchangeRate, places int32) Metric {
	converted := M(raw, rate.From).Convert(rate)
	return Metric{
		Label:     label,
		Kind:      Monetary,
		Valid:     true,
		Raw:       raw.Round(places),
		Currency:  rate.From,
		Converted: converted.Value().Round(places),
		Target:    rate.To,
		Places:    places,
	}
}

// Scalar returns a currency independent Metric rounded to places decimals.
func Scalar(label string, kind Kind, v decimal.Decimal, places int32) Metric {
	v = v.Round(places)
	return Metric{Label: label, Kind: kind, Valid: true, Raw: v, Converted: v, Places: places}
}

// TextMetric returns a Text Metric, unavailable when s is empty.
func TextMetric(label, s string) Metric {
	return Metric{Label: label, Kind: Text, Valid: s != "", Text: s}
}

// Signed returns a copy of m classified by the sign of the unrounded value v.
func (m Metric) Signed(v decimal.Decimal) Metric {
	m.Sign = Classify(v)
	return m
}

// String returns a neutral rendition of the metric: "N/A" when unavailable,
// "converted <-- raw" for monetary values.
func (m Metric) String() string {
	if !m.Valid {
		return NotAvailable
	}
	prefix := ""
	if m.Sign == Positive {
		prefix = "+"
	}
	switch m.Kind {
	case Text:
		return m.Text
	case Monetary:
		format := Money.Format
		if m.Sign != Unsigned {
			format = Money.SignedString
		}
		converted := format(M(m.Converted, m.Target), m.Places)
		if m.Currency == m.Target {
			return converted
		}
		return converted + " <-- " + format(M(m.Raw, m.Currency), m.Places)
	case Percent:
		return prefix + m.Raw.StringFixed(m.Places) + "%"
	case Count:
		if m.Unit == "" {
			return m.Raw.StringFixed(m.Places)
		}
		return m.Raw.StringFixed(m.Places) + " " + m.Unit
	case Rate:
		return fmt.Sprintf("%s %s/%s", m.Raw.StringFixed(m.Places), m.Target, m.Currency)
	default:
		return prefix + m.Raw.StringFixed(m.Places)
	}
}

// NotAvailable is the rendition of a missing value.
const NotAvailable = "N/A"
