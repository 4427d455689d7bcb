package assetprofile

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from string constants.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// point is a helper to create a price point without adjusted close.
func point(t time.Time, close string) PricePoint {
	return PricePoint{Time: t, Close: D(close)}
}

// fakeProvider serves canned data and records every call.
type fakeProvider struct {
	infos   map[string]map[string]any
	history map[string]PriceSeries // by symbol + "/" + window range
	quotes  map[string]PriceSeries // by base+quote
	calls   []string
}

func (f *fakeProvider) Lookup(_ context.Context, symbol string) (AssetInfo, error) {
	f.calls = append(f.calls, "lookup "+symbol)
	fields, ok := f.infos[symbol]
	if !ok {
		return AssetInfo{}, fmt.Errorf("%w: %s", ErrTickerNotFound, symbol)
	}
	return NewAssetInfo(fields), nil
}

func (f *fakeProvider) History(_ context.Context, symbol string, w Window) (PriceSeries, error) {
	f.calls = append(f.calls, "history "+symbol+" "+w.Range)
	return f.history[symbol+"/"+w.Range], nil
}

func (f *fakeProvider) Quote(_ context.Context, base, quote string) (PriceSeries, error) {
	f.calls = append(f.calls, "quote "+base+quote)
	return f.quotes[base+quote], nil
}

var day0 = time.Date(2025, 6, 6, 15, 30, 0, 0, time.UTC)

// acme is a fully populated asset info in USD.
func acme() map[string]any {
	return map[string]any{
		"symbol":               "ACME",
		"shortName":            "Acme",
		"longName":             "Acme Corporation",
		"quoteType":            "EQUITY",
		"address1":             "1 Road Runner Way",
		"city":                 "Phoenix",
		"state":                "AZ",
		"zip":                  "85001",
		"country":              "United States",
		"website":              "https://acme.example",
		"sector":               "Industrials",
		"industry":             "Tools & Accessories",
		"fullExchangeName":     "NasdaqGS",
		"exchange":             "NMS",
		"exchangeTimezoneName": "America/New_York",
		"currency":             "USD",
		"exDividendDate":       float64(1717632000),
		"dividendDate":         int64(1718236800),
		"nextFiscalYearEnd":    float64(1735603200),
		"earningsDate":         "2025-07-30",
		"longBusinessSummary":  "Acme Corporation makes anvils.",
		"previousClose":        9.5,
		"epsForward":           1.234,
		"lastDividendValue":    0.25,
		"enterpriseValue":      1234567890.4,
		"totalCash":            1000000.6,
		"totalDebt":            500000,
		"marketCap":            2000000000,
		"sharesOutstanding":    150000000,
		"fullTimeEmployees":    1200,
		"fiftyTwoWeekHigh":     12.345,
		"fiftyTwoWeekLow":      7.891,
		"beta":                 1.234567,
		"returnOnEquity":       0.25,
		"payoutRatio":          0.4,
		"trailingPE":           18.456,
		"forwardPE":            15.2,
		"pegRatio":             1.1,
		"enterpriseToEbitda":   12.345,
		"enterpriseToRevenue":  3.333,
	}
}
