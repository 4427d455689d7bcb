package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/assetprofile/date"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the EODHD API.

// endpoint returns the address of an API path with the token and json format.
func (c *Client) endpoint(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_token", c.APIKey)
	query.Set("fmt", "json")
	return c.BaseURL + path + "?" + query.Encode()
}

// fetchFundamentals returns the untyped fundamentals document of a ticker.
func (c *Client) fetchFundamentals(ctx context.Context, ticker string) (any, error) {
	// https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json
	// {
	//   "General": {"Code": "AAPL", "Name": "Apple Inc", "CurrencyCode": "USD", ...},
	//   "Highlights": {"MarketCapitalization": 3.4e12, "PERatio": 35.1, ...},
	//   "Valuation": {"ForwardPE": 30.2, "EnterpriseValue": 3.5e12, ...},
	//   "SharesStats": {...}, "Technicals": {"Beta": 1.24, "52WeekHigh": 237.23, ...},
	//   "SplitsDividends": {"PayoutRatio": 0.15, "ExDividendDate": "2024-08-12", ...}
	// }
	var doc any
	if err := jwget(ctx, c.HTTP, c.endpoint("/fundamentals/"+url.PathEscape(ticker), nil), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// fundamentalPaths maps asset fields to their location in the fundamentals document.
var fundamentalPaths = map[string]string{
	"longName":            "$.General.Name",
	"shortName":           "$.General.Code",
	"quoteType":           "$.General.Type",
	"address1":            "$.General.AddressData.Street",
	"city":                "$.General.AddressData.City",
	"state":               "$.General.AddressData.State",
	"zip":                 "$.General.AddressData.ZIP",
	"country":             "$.General.CountryName",
	"website":             "$.General.WebURL",
	"sector":              "$.General.Sector",
	"industry":            "$.General.Industry",
	"exchange":            "$.General.Exchange",
	"currency":            "$.General.CurrencyCode",
	"longBusinessSummary": "$.General.Description",
	"fullTimeEmployees":   "$.General.FullTimeEmployees",
	"marketCap":           "$.Highlights.MarketCapitalization",
	"trailingPE":          "$.Highlights.PERatio",
	"pegRatio":            "$.Highlights.PEGRatio",
	"returnOnEquity":      "$.Highlights.ReturnOnEquityTTM",
	"epsForward":          "$.Highlights.EPSEstimateNextYear",
	"lastDividendValue":   "$.Highlights.DividendShare",
	"forwardPE":           "$.Valuation.ForwardPE",
	"enterpriseValue":     "$.Valuation.EnterpriseValue",
	"enterpriseToRevenue": "$.Valuation.EnterpriseValueRevenue",
	"enterpriseToEbitda":  "$.Valuation.EnterpriseValueEbitda",
	"sharesOutstanding":   "$.SharesStats.SharesOutstanding",
	"beta":                "$.Technicals.Beta",
	"fiftyTwoWeekHigh":    `$.Technicals["52WeekHigh"]`,
	"fiftyTwoWeekLow":     `$.Technicals["52WeekLow"]`,
	"payoutRatio":         "$.SplitsDividends.PayoutRatio",
	"exDividendDate":      "$.SplitsDividends.ExDividendDate",
	"dividendDate":        "$.SplitsDividends.DividendDate",
}

// extract reads the scalar fields of doc. Paths missing from the document,
// zeros and "0000-00-00" dates are dropped.
func extract(doc any) map[string]any {
	fields := make(map[string]any, len(fundamentalPaths))
	for field, path := range fundamentalPaths {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer.
		if list, ok := v.([]any); ok {
			if len(list) == 0 {
				continue
			}
			v = list[0]
		}
		switch x := v.(type) {
		case string:
			if x == "" || x == "0000-00-00" || x == "NA" {
				continue
			}
			fields[field] = x
		case float64:
			if x == 0 {
				continue
			}
			fields[field] = x
		}
	}
	return fields
}

// fetchPreviousClose returns the previous close of a ticker from the live endpoint.
func (c *Client) fetchPreviousClose(ctx context.Context, ticker string) (decimal.Decimal, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=demo&fmt=json
	// {"code":"AAPL.US","timestamp":1717790400,"close":196.89,"previousClose":194.48, ...}
	var content struct {
		PreviousClose decimal.NullDecimal `json:"previousClose"`
	}
	if err := jwget(ctx, c.HTTP, c.endpoint("/real-time/"+url.PathEscape(ticker), nil), &content); err != nil {
		return decimal.Zero, err
	}
	if !content.PreviousClose.Valid {
		return decimal.Zero, fmt.Errorf("no previous close for %s", ticker)
	}
	return content.PreviousClose.Decimal, nil
}

// bar is a price observation of the eod and intraday endpoints.
type bar struct {
	Time     time.Time
	Close    decimal.Decimal
	AdjClose decimal.NullDecimal
}

// fetchEOD returns the daily, weekly or monthly bars of a ticker since from
// (all of them when from is zero).
func (c *Client) fetchEOD(ctx context.Context, ticker, period string, from date.Date) ([]bar, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json&period=d&from=2024-02-01
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	// bounds are included in the response.
	q := url.Values{"period": {period}}
	if !from.IsZero() {
		q.Set("from", from.String())
	}
	type Info struct {
		Date          date.Date           `json:"date"`
		Close         decimal.Decimal     `json:"close"`
		AdjustedClose decimal.NullDecimal `json:"adjusted_close"`
	}
	content := make([]Info, 0)
	if err := jwget(ctx, c.HTTP, c.endpoint("/eod/"+url.PathEscape(ticker), q), &content); err != nil {
		return nil, err
	}
	bars := make([]bar, 0, len(content))
	for _, info := range content {
		bars = append(bars, bar{
			Time:     time.Unix(info.Date.Unix(), 0).UTC(),
			Close:    info.Close,
			AdjClose: info.AdjustedClose,
		})
	}
	return bars, nil
}

// fetchIntraday returns the intraday bars of a ticker since from.
func (c *Client) fetchIntraday(ctx context.Context, ticker, interval string, from time.Time) ([]bar, error) {
	// https://eodhd.com/api/intraday/AAPL.US?api_token=demo&fmt=json&interval=1h&from=1717200000
	// [{"timestamp":1717421400,"gmtoffset":0,"datetime":"2024-06-03 13:30:00","open":192.9,"high":193.0,"low":191.1,"close":192.3,"volume":2305145}, ...]
	q := url.Values{
		"interval": {interval},
		"from":     {strconv.FormatInt(from.Unix(), 10)},
	}
	type Info struct {
		Timestamp int64               `json:"timestamp"`
		Close     decimal.NullDecimal `json:"close"`
	}
	content := make([]Info, 0)
	if err := jwget(ctx, c.HTTP, c.endpoint("/intraday/"+url.PathEscape(ticker), q), &content); err != nil {
		return nil, err
	}
	bars := make([]bar, 0, len(content))
	for _, info := range content {
		if !info.Close.Valid {
			continue
		}
		bars = append(bars, bar{Time: time.Unix(info.Timestamp, 0).UTC(), Close: info.Close.Decimal})
	}
	return bars, nil
}
