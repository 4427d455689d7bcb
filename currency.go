package assetprofile

import (
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnit is a currency quoted in a fraction of an ISO currency, as Yahoo
// does for London (GBp), Johannesburg (ZAc) and Tel Aviv (ILA) listings.
type minorUnit struct {
	major string
	per   int64 // minor units per major unit
}

var minorUnits = map[string]minorUnit{
	"GBp": {"GBP", 100},
	"GBX": {"GBP", 100},
	"ZAc": {"ZAR", 100},
	"ZAC": {"ZAR", 100},
	"ILA": {"ILS", 100},
}

// NormalizeCurrency returns the canonical spelling of a currency code: minor
// unit codes as listed above ("GBp"), ISO codes upper cased.
func NormalizeCurrency(code string) string {
	code = strings.TrimSpace(code)
	if _, ok := minorUnits[code]; ok {
		return code
	}
	return strings.ToUpper(code)
}

// MajorUnit returns the ISO currency of code and the value of one unit of
// code in it: ("GBP", 0.01) for "GBp", (code, 1) for ISO codes.
func MajorUnit(code string) (string, decimal.Decimal) {
	if u, ok := minorUnits[code]; ok {
		return u.major, decimal.NewFromInt(1).Div(decimal.NewFromInt(u.per))
	}
	return code, decimal.NewFromInt(1)
}
