package assetprofile

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is a single observation of a price series.
type PricePoint struct {
	Time     time.Time
	Close    decimal.Decimal
	AdjClose decimal.NullDecimal // Valid only when the provider reports an adjusted close.
}

// Price returns the adjusted close when available, the close otherwise.
func (p PricePoint) Price() decimal.Decimal {
	if p.AdjClose.Valid {
		return p.AdjClose.Decimal
	}
	return p.Close
}

// PriceSeries is a time-ordered sequence of price points. It may be empty.
type PriceSeries []PricePoint

// Last returns the most recent point of the series.
func (s PriceSeries) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}
