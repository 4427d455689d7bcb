package assetprofile

import "errors"

// Request-level failures. Field-level absence is never an error: it resolves
// to an unavailable Metric or to "N/A".
var (
	// ErrTickerNotFound is returned when the provider does not recognise a symbol.
	ErrTickerNotFound = errors.New("ticker not found")
	// ErrRateUnavailable is returned when no exchange rate can be quoted for a currency pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrNoPriceData is returned when the provider has no price for the requested period.
	ErrNoPriceData = errors.New("no price data for period")
)
