package assetprofile

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPolicyFor(t *testing.T) {
	testCases := []struct {
		period Period
		want   AxisPolicy
	}{
		{ThreeDays, AxisPolicy{Unit: Hour, Every: 6, LabelFormat: "2006-01-02 15h"}},
		{FiveDays, AxisPolicy{Unit: Day, Every: 1, LabelFormat: "2006-01-02 15h"}},
		{OneMonth, AxisPolicy{Unit: Week, Every: 1, LabelFormat: "2006-01-02"}},
		{ThreeMonths, AxisPolicy{Unit: Week, Every: 1, LabelFormat: "2006-01-02"}},
		{SixMonths, AxisPolicy{Unit: Week, Every: 1, LabelFormat: "2006-01-02"}},
		{OneYear, AxisPolicy{Unit: Month, Every: 6, LabelFormat: "2006-01"}},
		{FiveYears, AxisPolicy{Unit: Month, Every: 6, LabelFormat: "2006-01"}},
		{TenYears, AxisPolicy{Unit: Month, Every: 6, LabelFormat: "2006-01"}},
		{Max, AxisPolicy{Unit: Year, Every: 1, LabelFormat: "2006"}},
	}
	for _, tc := range testCases {
		got := PolicyFor(tc.period)
		if got != tc.want {
			t.Errorf("PolicyFor(%v) = %v, want %v", tc.period, got, tc.want)
		}
		if got.MinorTicks() {
			t.Errorf("PolicyFor(%v) draws minor ticks", tc.period)
		}
	}
}

func TestPolicyFor_Invalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PolicyFor(invalid) did not panic")
		}
	}()
	PolicyFor(Period(42))
}

func TestAxisPolicy_Ticks(t *testing.T) {
	at := func(s string) time.Time {
		v, err := time.Parse("2006-01-02 15:04", s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	testCases := []struct {
		period   Period
		from, to string
		want     []string
	}{
		{ThreeDays, "2025-06-04 01:30", "2025-06-04 20:00", []string{"2025-06-04 06h", "2025-06-04 12h", "2025-06-04 18h"}},
		{FiveDays, "2025-06-02 10:00", "2025-06-05 16:00", []string{"2025-06-03 00h", "2025-06-04 00h", "2025-06-05 00h"}},
		{OneMonth, "2025-06-04 00:00", "2025-06-20 00:00", []string{"2025-06-09", "2025-06-16"}},
		{OneMonth, "2025-06-02 00:00", "2025-06-09 00:00", []string{"2025-06-02", "2025-06-09"}},
		{OneYear, "2024-03-15 00:00", "2025-08-01 00:00", []string{"2024-07", "2025-01", "2025-07"}},
		{Max, "2019-05-01 00:00", "2022-02-01 00:00", []string{"2020", "2021", "2022"}},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String()+" "+tc.from, func(t *testing.T) {
			p := PolicyFor(tc.period)
			var got []string
			for _, tick := range p.Ticks(at(tc.from), at(tc.to)) {
				got = append(got, p.Label(tick))
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Ticks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAxisPolicy_TicksEmpty(t *testing.T) {
	p := PolicyFor(OneYear)
	if got := p.Ticks(day0, day0.AddDate(0, 0, -1)); got != nil {
		t.Errorf("Ticks(reversed) = %v, want nil", got)
	}
}
