package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/assetprofile"
	"github.com/shopspring/decimal"
)

func testChart(t *testing.T, period assetprofile.Period, from, to time.Time) *assetprofile.Chart {
	t.Helper()
	series := assetprofile.PriceSeries{
		{Time: from, Close: decimal.NewFromInt(100)},
		{Time: from.Add(to.Sub(from) / 2), Close: decimal.NewFromInt(120)},
		{Time: to, Close: decimal.NewFromInt(110)},
	}
	c, err := assetprofile.NewChart("ACME", "Acme & Co", period, series, assetprofile.Identity("USD"))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSVG_Ticks(t *testing.T) {
	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	c := testChart(t, assetprofile.OneYear, from, to)

	got := SVG(c, "Price of Acme & Co", DefaultConfig())
	if !strings.HasPrefix(got, "<svg") || !strings.HasSuffix(got, "</svg>") {
		t.Fatalf("SVG() is not an svg document: %q", got)
	}
	if n := strings.Count(got, `class="tick"`); n != 3 {
		t.Errorf("SVG() has %d ticks, want 3", n)
	}
	for _, label := range []string{">2024-07<", ">2025-01<", ">2025-07<", "Price (in USD)", "Acme &amp; Co"} {
		if !strings.Contains(got, label) {
			t.Errorf("SVG() does not contain %q", label)
		}
	}
}

func TestSVG_Hourly(t *testing.T) {
	from := time.Date(2025, 6, 4, 1, 30, 0, 0, time.UTC)
	c := testChart(t, assetprofile.ThreeDays, from, from.Add(19*time.Hour))
	got := SVG(c, "", Config{})
	if !strings.Contains(got, ">2025-06-04 06h<") {
		t.Errorf("SVG() does not contain the 06h tick:\n%s", got)
	}
}

func TestWriteFile(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	c := testChart(t, assetprofile.OneMonth, from, from.AddDate(0, 0, 20))
	name := filepath.Join(t.TempDir(), FileName(c))
	if err := WriteFile(name, c, "title", DefaultConfig()); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), ">2025-06-09<") {
		t.Errorf("file does not contain the weekly tick")
	}
	if filepath.Base(name) != "ACME-1mo.svg" {
		t.Errorf("FileName() = %q", filepath.Base(name))
	}
}
