package assetprofile

import (
	"fmt"
	"time"
)

// TickUnit is the calendar unit of chart ticks.
type TickUnit int

const (
	Hour TickUnit = iota
	Day
	Week
	Month
	Year
)

func (u TickUnit) String() string {
	switch u {
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("TickUnit(%d)", int(u))
	}
}

// Label formats of the tick labels, as time.Format layouts.
const (
	DateHourLabel  = "2006-01-02 15h"
	DateLabel      = "2006-01-02"
	YearMonthLabel = "2006-01"
	YearLabel      = "2006"
)

// AxisPolicy is the time axis configuration of a chart: one major tick every
// Every units, labelled with LabelFormat. Minor ticks are never drawn.
type AxisPolicy struct {
	Unit        TickUnit
	Every       int
	LabelFormat string
}

// MinorTicks reports whether minor ticks are drawn. They never are.
func (AxisPolicy) MinorTicks() bool { return false }

func (a AxisPolicy) String() string {
	return fmt.Sprintf("every %d %s(s), %q", a.Every, a.Unit, a.LabelFormat)
}

var axisPolicies = map[Period]AxisPolicy{
	ThreeDays:   {Unit: Hour, Every: 6, LabelFormat: DateHourLabel},
	FiveDays:    {Unit: Day, Every: 1, LabelFormat: DateHourLabel},
	OneMonth:    {Unit: Week, Every: 1, LabelFormat: DateLabel},
	ThreeMonths: {Unit: Week, Every: 1, LabelFormat: DateLabel},
	SixMonths:   {Unit: Week, Every: 1, LabelFormat: DateLabel},
	OneYear:     {Unit: Month, Every: 6, LabelFormat: YearMonthLabel},
	FiveYears:   {Unit: Month, Every: 6, LabelFormat: YearMonthLabel},
	TenYears:    {Unit: Month, Every: 6, LabelFormat: YearMonthLabel},
	Max:         {Unit: Year, Every: 1, LabelFormat: YearLabel},
}

func init() {
	for _, p := range Periods() {
		if _, ok := axisPolicies[p]; !ok {
			panic(fmt.Sprintf("no axis policy for period %v", p))
		}
		if _, ok := periodInfos[p]; !ok {
			panic(fmt.Sprintf("no provider window for period %d", int(p)))
		}
	}
}

// PolicyFor returns the axis policy of a period.
func PolicyFor(p Period) AxisPolicy {
	a, ok := axisPolicies[p]
	if !ok {
		panic(fmt.Sprintf("invalid period %d", int(p)))
	}
	return a
}

// Label formats a tick time.
func (a AxisPolicy) Label(t time.Time) string { return t.Format(a.LabelFormat) }

// Ticks returns the major tick times within [from, to], aligned on the
// policy's unit: multiples of Every hours, midnights, Mondays, months
// 1, 1+Every, ... and January 1st. Times are expressed in from's location.
func (a AxisPolicy) Ticks(from, to time.Time) []time.Time {
	if to.Before(from) || a.Every <= 0 {
		return nil
	}
	loc := from.Location()
	to = to.In(loc)
	t := a.first(from)
	var ticks []time.Time
	for !t.After(to) {
		if !t.Before(from) {
			ticks = append(ticks, t)
		}
		t = a.next(t)
	}
	return ticks
}

// first returns the aligned tick at or before from.
func (a AxisPolicy) first(from time.Time) time.Time {
	y, m, d := from.Date()
	loc := from.Location()
	switch a.Unit {
	case Hour:
		return time.Date(y, m, d, from.Hour()-from.Hour()%a.Every, 0, 0, 0, loc)
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Week:
		offset := (int(from.Weekday()) + 6) % 7 // days since Monday
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case Month:
		m0 := int(m) - 1
		return time.Date(y, time.Month(m0-m0%a.Every+1), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y-y%a.Every, 1, 1, 0, 0, 0, 0, loc)
	}
}

func (a AxisPolicy) next(t time.Time) time.Time {
	switch a.Unit {
	case Hour:
		return t.Add(time.Duration(a.Every) * time.Hour)
	case Day:
		return t.AddDate(0, 0, a.Every)
	case Week:
		return t.AddDate(0, 0, 7*a.Every)
	case Month:
		return t.AddDate(0, a.Every, 0)
	default:
		return t.AddDate(a.Every, 0, 0)
	}
}
