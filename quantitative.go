package assetprofile

import (
	"github.com/etnz/assetprofile/date"
	"github.com/shopspring/decimal"
)

// Labels of the metrics derived outside of the rule table.
const (
	LabelPriceDate         = "Price Date"
	LabelCurrency          = "ISO Currency Code"
	LabelTargetCurrency    = "My ISO Currency Code"
	LabelExchangeRate      = "Exchange Rate"
	LabelCurrentPrice      = "Current Price"
	LabelPriceChange       = "Price Change (currency)"
	LabelPriceChangePct    = "Price Change (percent)"
	LabelSustainableGrowth = "Sustainable Growth Rate"
)

// rule derives one metric from one raw field.
type rule struct {
	label  string
	field  string
	kind   Kind
	places int32
	unit   string
}

// Rounding of monetary figures: per-share and price figures keep cents,
// balance-sheet aggregates are whole units.
const (
	pricePlaces     = 2
	aggregatePlaces = 0
)

// rules is the ordered table of metrics read directly from AssetInfo.
var rules = []rule{
	{label: "Forward Earning", field: "epsForward", kind: Monetary, places: pricePlaces},
	{label: "Last Dividend", field: "lastDividendValue", kind: Monetary, places: pricePlaces},
	{label: "Enterprise Value", field: "enterpriseValue", kind: Monetary, places: aggregatePlaces},
	{label: "Total Cash", field: "totalCash", kind: Monetary, places: aggregatePlaces},
	{label: "Total Debt", field: "totalDebt", kind: Monetary, places: aggregatePlaces},
	{label: "Market Capitalization", field: "marketCap", kind: Monetary, places: aggregatePlaces},
	{label: "Shares outstanding", field: "sharesOutstanding", kind: Count, unit: "shares"},
	{label: "Number of Employees", field: "fullTimeEmployees", kind: Count, unit: "employees"},
	{label: "52 Week High", field: "fiftyTwoWeekHigh", kind: Monetary, places: pricePlaces},
	{label: "52 Week Low", field: "fiftyTwoWeekLow", kind: Monetary, places: pricePlaces},
	{label: "Beta", field: "beta", kind: Ratio, places: 5},
	{label: "Return on Equity", field: "returnOnEquity", kind: Percent, places: 2},
	{label: "Dividend Payout Ratio", field: "payoutRatio", kind: Percent, places: 2},
	{label: LabelSustainableGrowth, kind: Percent, places: 2},
	{label: "Trailing P/E", field: "trailingPE", kind: Ratio, places: 2},
	{label: "Forward P/E", field: "forwardPE", kind: Ratio, places: 2},
	{label: "PEG Ratio", field: "pegRatio", kind: Ratio, places: 2},
	{label: "EV/EBITDA", field: "enterpriseToEbitda", kind: Ratio, places: 2},
	{label: "EV/Revenue", field: "enterpriseToRevenue", kind: Ratio, places: 2},
}

var hundred = decimal.NewFromInt(100)

// eval derives the metric of r. It never fails: a missing field or an
// unusable rate yields an unavailable metric.
func (r rule) eval(info AssetInfo, rate ExchangeRate) Metric {
	v, ok := info.Decimal(r.field)
	if !ok {
		return Unavailable(r.label, r.kind)
	}
	switch r.kind {
	case Monetary:
		if !rate.IsValid() {
			return Unavailable(r.label, r.kind)
		}
		return Present(r.label, v, rate, r.places)
	case Percent:
		return Scalar(r.label, r.kind, v.Mul(hundred), r.places)
	case Count:
		m := Scalar(r.label, r.kind, v, r.places)
		m.Unit = r.unit
		return m
	default:
		return Scalar(r.label, r.kind, v, r.places)
	}
}

// QuantitativeProfile is the ordered list of derived metrics of an asset.
type QuantitativeProfile []Metric

// Get returns the metric with the given label.
func (q QuantitativeProfile) Get(label string) (Metric, bool) {
	for _, m := range q {
		if m.Label == label {
			return m, true
		}
	}
	return Metric{}, false
}

// BuildQuantitative derives every quantitative metric of an asset.
//
// series provides the current price (its last point), from is the asset's
// currency and rate converts from into to. If rate is not valid, every
// currency dependent metric is unavailable while currency independent ones
// are still derived.
func BuildQuantitative(info AssetInfo, series PriceSeries, from, to string, rate ExchangeRate) QuantitativeProfile {
	q := make(QuantitativeProfile, 0, len(rules)+8)

	last, hasPrice := series.Last()
	priceDate := ""
	if hasPrice {
		priceDate = date.Of(last.Time).String()
	}
	q = append(q,
		TextMetric(LabelPriceDate, priceDate),
		TextMetric(LabelCurrency, from),
		TextMetric(LabelTargetCurrency, to),
		rateMetric(rate),
	)
	q = append(q, priceMetrics(info, last, hasPrice, rate)...)

	for _, r := range rules {
		if r.label == LabelSustainableGrowth {
			q = append(q, sustainableGrowth(info))
			continue
		}
		q = append(q, r.eval(info, rate))
	}
	return q
}

func rateMetric(rate ExchangeRate) Metric {
	if !rate.IsValid() {
		return Unavailable(LabelExchangeRate, Rate)
	}
	m := Scalar(LabelExchangeRate, Rate, rate.Value, 4)
	m.Currency, m.Target = rate.From, rate.To
	return m
}

// priceMetrics returns the current price and the price change since the
// previous close, in this order: current, change, change percent.
func priceMetrics(info AssetInfo, last PricePoint, hasPrice bool, rate ExchangeRate) []Metric {
	current := Unavailable(LabelCurrentPrice, Monetary)
	change := Unavailable(LabelPriceChange, Monetary)
	changePct := Unavailable(LabelPriceChangePct, Percent)
	if !hasPrice {
		return []Metric{current, change, changePct}
	}

	price := last.Price()
	if rate.IsValid() {
		current = Present(LabelCurrentPrice, price, rate, pricePlaces)
	}

	previous, ok := info.Decimal("previousClose")
	if !ok {
		return []Metric{current, change, changePct}
	}
	diff := price.Sub(previous)
	if rate.IsValid() {
		change = Present(LabelPriceChange, diff, rate, pricePlaces).Signed(diff)
	}
	if !previous.IsZero() {
		pct := diff.Div(previous).Mul(hundred)
		changePct = Scalar(LabelPriceChangePct, Percent, pct, 2).Signed(pct)
	}
	return []Metric{current, change, changePct}
}

// sustainableGrowth is ROE * (1 - payout ratio), available only when both are.
func sustainableGrowth(info AssetInfo) Metric {
	roe, okROE := info.Decimal("returnOnEquity")
	payout, okPayout := info.Decimal("payoutRatio")
	if !okROE || !okPayout {
		return Unavailable(LabelSustainableGrowth, Percent)
	}
	g := roe.Mul(decimal.NewFromInt(1).Sub(payout))
	return Scalar(LabelSustainableGrowth, Percent, g.Mul(hundred), 2)
}
