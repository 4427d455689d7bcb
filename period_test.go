package assetprofile

import (
	"flag"
	"testing"
)

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "1", want: ThreeDays},
		{in: "9", want: Max},
		{in: " 4 ", want: ThreeMonths},
		{in: "5y", want: FiveYears},
		{in: "1MO", want: OneMonth},
		{in: "1 semester", want: SixMonths},
		{in: "since inception", want: Max},
		{in: "0", wantErr: true},
		{in: "10", wantErr: true},
		{in: "2w", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPeriods(t *testing.T) {
	ps := Periods()
	if len(ps) != 9 {
		t.Fatalf("len(Periods()) = %d, want 9", len(ps))
	}
	seen := map[string]bool{}
	for i, p := range ps {
		if p.Menu() != i+1 {
			t.Errorf("%v.Menu() = %d, want %d", p, p.Menu(), i+1)
		}
		if seen[p.String()] {
			t.Errorf("duplicate period code %q", p)
		}
		seen[p.String()] = true
		if p.Label() == "" || p.Window().Interval == "" {
			t.Errorf("period %v has no label or interval", p)
		}
		if got, err := ParsePeriod(p.String()); err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if Period(9).IsValid() || Period(-1).IsValid() {
		t.Error("out of range periods must be invalid")
	}
}

func TestPeriod_Flag(t *testing.T) {
	var p Period
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&p, "period", "")
	if err := fs.Parse([]string{"-period", "10y"}); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if p != TenYears {
		t.Errorf("period = %v, want %v", p, TenYears)
	}
}
