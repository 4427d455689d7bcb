package assetprofile

import (
	"fmt"
	"time"

	"github.com/etnz/assetprofile/date"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChartPoint is a close price converted into the chart currency.
type ChartPoint struct {
	Time  time.Time
	Value decimal.Decimal
}

// Chart is the data and axis configuration of a price evolution chart.
type Chart struct {
	Symbol   string
	Name     string
	Period   Period
	Currency string
	Policy   AxisPolicy
	Points   []ChartPoint
}

// NewChart converts the close prices of series with rate and selects the axis
// policy of period. An empty series returns ErrNoPriceData.
func NewChart(symbol, name string, period Period, series PriceSeries, rate ExchangeRate) (*Chart, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s over %s", ErrNoPriceData, symbol, period.Label())
	}
	if !rate.IsValid() {
		return nil, fmt.Errorf("%w: cannot chart %s in %q", ErrRateUnavailable, symbol, rate.To)
	}
	c := &Chart{
		Symbol:   symbol,
		Name:     name,
		Period:   period,
		Currency: rate.To,
		Policy:   PolicyFor(period),
		Points:   make([]ChartPoint, len(series)),
	}
	for i, p := range series {
		c.Points[i] = ChartPoint{Time: p.Time, Value: rate.Apply(p.Close)}
	}
	return c, nil
}

// Ticks returns the major ticks spanning the chart.
func (c *Chart) Ticks() []time.Time {
	if len(c.Points) == 0 {
		return nil
	}
	return c.Policy.Ticks(c.Points[0].Time, c.Points[len(c.Points)-1].Time)
}

// Values returns the chart values as floats.
func (c *Chart) Values() []float64 {
	v := make([]float64, len(c.Points))
	for i, p := range c.Points {
		v[i] = p.Value.InexactFloat64()
	}
	return v
}

// ChartStats summarizes the converted values of a chart.
type ChartStats struct {
	First, Last     float64
	Low, High       float64
	Mean, StdDev    float64
	Change          float64 // Last - First
	ChangePercent   float64 // relative to First, 0 when First is 0
	ChangeAvailable bool
}

// Stats computes the summary statistics of the chart.
func (c *Chart) Stats() ChartStats {
	v := c.Values()
	if len(v) == 0 {
		return ChartStats{}
	}
	s := ChartStats{
		First: v[0],
		Last:  v[len(v)-1],
		Low:   floats.Min(v),
		High:  floats.Max(v),
		Mean:  stat.Mean(v, nil),
	}
	if len(v) > 1 {
		s.StdDev = stat.StdDev(v, nil)
	}
	s.Change = s.Last - s.First
	if s.First != 0 {
		s.ChangePercent = s.Change / s.First * 100
		s.ChangeAvailable = true
	}
	return s
}

// Title returns the title of the chart drawn on a given day.
func (c *Chart) Title(on date.Date) string {
	return fmt.Sprintf("Price of %s (over %s, %s)", c.Name, c.Period.Label(), on)
}

// ValueLabel returns the label of the value axis.
func (c *Chart) ValueLabel() string { return fmt.Sprintf("Price (in %s)", c.Currency) }
