package assetprofile

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is a lookback window of the price chart.
type Period int

const (
	ThreeDays Period = iota
	FiveDays
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	FiveYears
	TenYears
	Max
)

// Periods returns all the periods, from the shortest to the longest.
func Periods() []Period {
	return []Period{ThreeDays, FiveDays, OneMonth, ThreeMonths, SixMonths, OneYear, FiveYears, TenYears, Max}
}

type periodInfo struct {
	code     string // provider range code
	interval string // provider bar interval
	label    string
}

var periodInfos = map[Period]periodInfo{
	ThreeDays:   {"3d", "1h", "3 days"},
	FiveDays:    {"5d", "1h", "5 days"},
	OneMonth:    {"1mo", "1d", "1 month"},
	ThreeMonths: {"3mo", "1d", "1 quarter"},
	SixMonths:   {"6mo", "1d", "1 semester"},
	OneYear:     {"1y", "1d", "1 year"},
	FiveYears:   {"5y", "1wk", "5 years"},
	TenYears:    {"10y", "1wk", "10 years"},
	Max:         {"max", "1mo", "since inception"},
}

// String returns the period code ("3d", "1mo", "max").
func (p Period) String() string {
	if i, ok := periodInfos[p]; ok {
		return i.code
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// Label returns the human readable name of the period ("1 quarter").
func (p Period) Label() string { return periodInfos[p].label }

// Window returns the provider window used to chart the period.
func (p Period) Window() Window {
	i := periodInfos[p]
	return Window{Range: i.code, Interval: i.interval}
}

// Menu returns the 1-based position of the period in the interactive menu.
func (p Period) Menu() int { return int(p) + 1 }

// IsValid reports whether p is one of the nine periods.
func (p Period) IsValid() bool {
	_, ok := periodInfos[p]
	return ok
}

// ParsePeriod reads a period from its menu number ("1".."9"), its code ("5y")
// or its label ("5 years").
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		p := Period(n - 1)
		if p.IsValid() {
			return p, nil
		}
		return 0, fmt.Errorf("unknown period %q: choose a number between 1 and %d", s, len(Periods()))
	}
	for _, p := range Periods() {
		if s == p.String() || s == p.Label() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown period %q", s)
}

// Set implements flag.Value.
func (p *Period) Set(s string) error {
	v, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
