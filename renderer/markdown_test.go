package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/date"
	"github.com/shopspring/decimal"
)

var day0 = time.Date(2025, 6, 6, 15, 30, 0, 0, time.UTC)

func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testProfile() *assetprofile.Profile {
	info := assetprofile.NewAssetInfo(map[string]any{
		"symbol":        "ACME",
		"longName":      "Acme Corporation",
		"currency":      "USD",
		"previousClose": 9.5,
		"marketCap":     2000000000,
		"trailingPE":    18.456,
	})
	rate := assetprofile.ExchangeRate{From: "USD", To: "EUR", Value: D("0.9")}
	series := assetprofile.PriceSeries{{Time: day0, Close: D("10")}}
	return &assetprofile.Profile{
		Asset:        &assetprofile.Asset{Symbol: "ACME", Info: info},
		On:           date.Of(day0),
		Rate:         rate,
		Qualitative:  assetprofile.BuildQualitative(info),
		Quantitative: assetprofile.BuildQuantitative(info, series, "USD", "EUR", rate),
	}
}

// contains checks that every expected fragment is in got.
func contains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("markdown does not contain %q:\n%s", w, got)
		}
	}
}

func TestProfileMarkdown(t *testing.T) {
	got := ProfileMarkdown(testProfile())
	contains(t, got,
		"# Profile of Acme Corporation (ACME)",
		"Report of 2025-06-06, monetary figures in EUR.",
		"## Qualitative Profile",
		"Company name",
		"Acme Corporation",
		"## Quantitative Profile",
		"9.00 EUR <-- 10.00 USD",
		"**+0.45 EUR <-- +0.50 USD**",
		"**+5.26%**",
		"18.46",
		"N/A",
	)
}

func TestMetric(t *testing.T) {
	testCases := []struct {
		m    assetprofile.Metric
		want string
	}{
		{assetprofile.Scalar("x", assetprofile.Percent, D("1.5"), 2).Signed(D("1.5")), "**+1.50%**"},
		{assetprofile.Scalar("x", assetprofile.Percent, D("-1.5"), 2).Signed(D("-1.5")), "*-1.50%*"},
		{assetprofile.Scalar("x", assetprofile.Percent, D("0"), 2).Signed(D("0")), "*0.00%*"},
		{assetprofile.Scalar("x", assetprofile.Ratio, D("3"), 2), "3.00"},
		{assetprofile.Unavailable("x", assetprofile.Monetary), "N/A"},
	}
	for _, tc := range testCases {
		if got := Metric(tc.m); got != tc.want {
			t.Errorf("Metric(%v) = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestChartMarkdown(t *testing.T) {
	series := assetprofile.PriceSeries{
		{Time: day0.AddDate(0, 0, -7), Close: D("8")},
		{Time: day0, Close: D("10")},
	}
	c, err := assetprofile.NewChart("ACME", "Acme Corporation", assetprofile.OneMonth, series, assetprofile.Identity("USD"))
	if err != nil {
		t.Fatal(err)
	}
	got := ChartMarkdown(c, date.Of(day0), "acme.svg")
	contains(t, got,
		"# Price of Acme Corporation (over 1 month, 2025-06-06)",
		"(acme.svg)",
		"Price (in USD)",
		"10.00 USD",
		"8.00 USD",
		"9.00 USD",
		"**+25.00%**",
	)
}

func TestPeriodsMarkdown(t *testing.T) {
	got := PeriodsMarkdown()
	contains(t, got, "since inception", "1 semester", "`2006-01-02 15h`", "every 6 month")
	if n := strings.Count(got, "\n|"); n < 9 {
		t.Errorf("PeriodsMarkdown() has %d table lines, want at least 9", n)
	}
}

func TestRateMarkdown(t *testing.T) {
	got := RateMarkdown(assetprofile.ExchangeRate{From: "USD", To: "EUR", Value: D("0.8")})
	contains(t, got, "Exchange Rate EUR/USD", "0.8000 EUR", "1.2500 USD")
}

func TestHTML(t *testing.T) {
	got, err := HTML(ProfileMarkdown(testProfile()))
	if err != nil {
		t.Fatalf("HTML() unexpected error: %v", err)
	}
	contains(t, got, "<h1", "Profile of Acme Corporation", "<table>", "<strong>+5.26%</strong>")
}
