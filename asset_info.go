package assetprofile

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/assetprofile/date"
	"github.com/shopspring/decimal"
)

// AssetInfo is an immutable set of raw fields describing an asset, as reported
// by a market-data provider (e.g. "longName", "marketCap", "exDividendDate").
//
// Values are scalars: strings, numbers or epoch timestamps (in seconds). A
// field that is missing, nil or an empty string is unavailable, and every
// accessor reports it with ok == false.
type AssetInfo struct {
	fields map[string]any
}

// NewAssetInfo returns an AssetInfo holding a copy of fields.
func NewAssetInfo(fields map[string]any) AssetInfo {
	return AssetInfo{fields: maps.Clone(fields)}
}

// Has reports whether the field is available.
func (a AssetInfo) Has(field string) bool {
	_, ok := a.value(field)
	return ok
}

// Keys returns the sorted names of the available fields.
func (a AssetInfo) Keys() []string {
	keys := make([]string, 0, len(a.fields))
	for k := range a.fields {
		if a.Has(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of available fields.
func (a AssetInfo) Len() int { return len(a.Keys()) }

func (a AssetInfo) value(field string) (any, bool) {
	v, ok := a.fields[field]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// String returns the field as a string. Numbers are formatted without loss.
func (a AssetInfo) String(field string) (string, bool) {
	v, ok := a.value(field)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), true
	case time.Time:
		return date.Of(x).String(), true
	default:
		d, ok := toDecimal(v)
		if !ok {
			return "", false
		}
		return d.String(), true
	}
}

// Decimal returns the field as a decimal number.
func (a AssetInfo) Decimal(field string) (decimal.Decimal, bool) {
	v, ok := a.value(field)
	if !ok {
		return decimal.Zero, false
	}
	return toDecimal(v)
}

// Date returns the field as a calendar day. Epoch seconds are converted in
// UTC, strings are parsed as ISO dates or RFC 3339 timestamps.
func (a AssetInfo) Date(field string) (date.Date, bool) {
	v, ok := a.value(field)
	if !ok {
		return date.Date{}, false
	}
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return date.Date{}, false
		}
		return date.Of(x.UTC()), true
	case string:
		if d, err := date.Parse(x); err == nil {
			return d, true
		}
		if t, err := time.Parse(time.RFC3339, x); err == nil {
			return date.Of(t.UTC()), true
		}
		if sec, err := strconv.ParseInt(x, 10, 64); err == nil && sec > 0 {
			return date.FromUnix(sec), true
		}
		return date.Date{}, false
	default:
		d, ok := toDecimal(v)
		if !ok || !d.IsPositive() {
			return date.Date{}, false
		}
		return date.FromUnix(d.IntPart()), true
	}
}

// toDecimal converts the numeric types found in decoded provider payloads.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		return toDecimal(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt32(x), true
	case int64:
		return decimal.NewFromInt(x), true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// qualitativeFields are the raw fields read by the qualitative profile.
var qualitativeFields = []string{
	"longName", "shortName", "symbol", "quoteType",
	"address1", "city", "state", "zip", "country",
	"website", "sector", "industry",
	"fullExchangeName", "exchange", "exchangeTimezoneName", "currency",
	"exDividendDate", "dividendDate", "nextFiscalYearEnd", "earningsDate",
	"longBusinessSummary",
}

// Fields returns the names of every raw field read by the profile builders,
// in the camel case spelling providers are expected to use.
func Fields() []string {
	fields := slices.Clone(qualitativeFields)
	fields = append(fields, "previousClose", "returnOnEquity", "payoutRatio")
	for _, r := range rules {
		if r.field != "" {
			fields = append(fields, r.field)
		}
	}
	slices.Sort(fields)
	return slices.Compact(fields)
}
