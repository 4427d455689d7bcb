package assetprofile

import (
	"fmt"
	"regexp"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

func (m Money) Value() decimal.Decimal { return m.value }

// Convert returns the value expressed in the rate's target currency.
func (m Money) Convert(r ExchangeRate) Money {
	return Money{value: r.Apply(m.value), cur: r.To}
}

// Format returns the value rounded to places decimals followed by its
// currency code, using the currency's separators when go-money knows it
// (e.g. "1,234.50 USD").
func (m Money) Format(places int32) string {
	v := m.value.Round(places)
	cur := money.GetCurrency(m.cur)
	if cur == nil || places < 0 {
		return fmt.Sprintf("%s %s", v.StringFixed(places), m.cur)
	}
	// only the separators of the currency are used: the code is printed
	// instead of the grapheme to avoid ambiguous "$".
	f := money.NewFormatter(int(places), cur.Decimal, cur.Thousand, "", "1")
	return fmt.Sprintf("%s %s", f.Format(v.Shift(places).IntPart()), m.cur)
}

// SignedString returns the string representation of the money value with a sign.
func (m Money) SignedString(places int32) string {
	if m.value.IsPositive() {
		return "+" + m.Format(places)
	}
	return m.Format(places)
}

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that code is a 3 uppercase letters ISO 4217 code
// known by go-money.
func ValidateCurrency(code string) error {
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid currency code: must be 3 uppercase letters, got %q", code)
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}
