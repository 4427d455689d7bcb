package assetprofile

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/assetprofile/date"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func newTestProfiler(f *fakeProvider) *Profiler {
	p := NewProfiler(f, zerolog.New(nil).Level(zerolog.Disabled))
	p.Now = func() date.Date { return date.Of(day0) }
	return p
}

func acmeProvider() *fakeProvider {
	return &fakeProvider{
		infos: map[string]map[string]any{
			"ACME":  acme(),
			"GHOST": {"symbol": "GHOST", "currency": "USD"},
		},
		history: map[string]PriceSeries{
			"ACME/1d":  {point(day0, "10")},
			"ACME/1mo": {point(day0.AddDate(0, 0, -7), "9"), point(day0, "10")},
		},
		quotes: map[string]PriceSeries{
			"USDEUR": {point(day0, "0.9")},
		},
	}
}

func TestProfiler_Lookup(t *testing.T) {
	testCases := []struct {
		symbol  string
		want    string
		wantErr error
	}{
		{symbol: "acme", want: "Acme Corporation"},
		{symbol: " ACME ", want: "Acme Corporation"},
		{symbol: "GHOST", wantErr: ErrTickerNotFound},
		{symbol: "NOPE", wantErr: ErrTickerNotFound},
		{symbol: "  ", wantErr: ErrTickerNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.symbol, func(t *testing.T) {
			a, err := newTestProfiler(acmeProvider()).Lookup(context.Background(), tc.symbol)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("Lookup(%q) error = %v, want %v", tc.symbol, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tc.symbol, err)
			}
			if a.Name() != tc.want || a.Symbol != "ACME" || a.Currency() != "USD" {
				t.Errorf("Lookup(%q) = %s %q %s", tc.symbol, a.Symbol, a.Name(), a.Currency())
			}
		})
	}
}

func TestProfiler_Profile(t *testing.T) {
	f := acmeProvider()
	p := newTestProfiler(f)
	ctx := context.Background()
	a, err := p.Lookup(ctx, "ACME")
	if err != nil {
		t.Fatal(err)
	}
	prof, err := p.Profile(ctx, a, "eur")
	if err != nil {
		t.Fatalf("Profile() unexpected error: %v", err)
	}
	if prof.On != date.Of(day0) {
		t.Errorf("Profile().On = %v, want %v", prof.On, date.Of(day0))
	}
	if got := prof.Rate.String(); got != "0.9000 EUR/USD" {
		t.Errorf("Profile().Rate = %q", got)
	}
	if name, _ := prof.Qualitative.Get("Company name"); name != "Acme Corporation" {
		t.Errorf("Company name = %q", name)
	}
	if m, _ := prof.Quantitative.Get(LabelCurrentPrice); !m.Converted.Equal(D("9")) || m.Target != "EUR" {
		t.Errorf("Current Price = %s", m)
	}
	want := []string{"lookup ACME", "quote USDEUR", "history ACME 1d"}
	if diff := cmp.Diff(want, f.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestProfiler_ProfileSameCurrency(t *testing.T) {
	f := acmeProvider()
	p := newTestProfiler(f)
	a, _ := p.Lookup(context.Background(), "ACME")
	if _, err := p.Profile(context.Background(), a, "USD"); err != nil {
		t.Fatalf("Profile() unexpected error: %v", err)
	}
	for _, c := range f.calls {
		if c == "quote USDUSD" {
			t.Error("identical currencies must not be quoted")
		}
	}
}

func TestProfiler_ProfileRateUnavailable(t *testing.T) {
	f := acmeProvider()
	p := newTestProfiler(f)
	a, _ := p.Lookup(context.Background(), "ACME")
	_, err := p.Profile(context.Background(), a, "GBP")
	if !errors.Is(err, ErrRateUnavailable) {
		t.Errorf("Profile() error = %v, want ErrRateUnavailable", err)
	}
	for _, c := range f.calls {
		if c == "history ACME 1d" {
			t.Error("prices must not be read once the rate failed")
		}
	}
}

func TestProfiler_ProfileNoPrice(t *testing.T) {
	f := acmeProvider()
	delete(f.history, "ACME/1d")
	p := newTestProfiler(f)
	a, _ := p.Lookup(context.Background(), "ACME")
	prof, err := p.Profile(context.Background(), a, "USD")
	if err != nil {
		t.Fatalf("Profile() unexpected error: %v", err)
	}
	if m, _ := prof.Quantitative.Get(LabelCurrentPrice); m.Valid {
		t.Errorf("Current Price = %s, want unavailable", m)
	}
}

func TestProfiler_Chart(t *testing.T) {
	f := acmeProvider()
	p := newTestProfiler(f)
	a, _ := p.Lookup(context.Background(), "ACME")
	rate := ExchangeRate{From: "USD", To: "EUR", Value: D("0.9")}

	c, err := p.Chart(context.Background(), a, OneMonth, rate)
	if err != nil {
		t.Fatalf("Chart() unexpected error: %v", err)
	}
	if len(c.Points) != 2 || c.Name != "Acme Corporation" {
		t.Errorf("Chart() = %d points for %q", len(c.Points), c.Name)
	}

	if _, err := p.Chart(context.Background(), a, Max, rate); !errors.Is(err, ErrNoPriceData) {
		t.Errorf("Chart(max) error = %v, want ErrNoPriceData", err)
	}
	if _, err := p.Chart(context.Background(), a, Period(12), rate); err == nil {
		t.Error("Chart(invalid period) = nil error")
	}
}
