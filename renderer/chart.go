package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// ChartMarkdown renders the summary of a chart drawn on a day. image is the
// location of the rendered chart, omitted when empty.
func ChartMarkdown(c *assetprofile.Chart, on date.Date, image string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(c.Title(on))
	if image != "" {
		doc.PlainText(fmt.Sprintf("![%s](%s)", c.Title(on), image))
	}

	s := c.Stats()
	money := func(v float64) string {
		return assetprofile.M(decimal.NewFromFloat(v), c.Currency).Format(2)
	}
	change := assetprofile.NotAvailable
	if s.ChangeAvailable {
		d := decimal.NewFromFloat(s.ChangePercent).Round(2)
		change = d.StringFixed(2) + "%"
		if d.IsPositive() {
			change = md.Bold("+" + change)
		} else {
			change = md.Italic(change)
		}
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{c.ValueLabel(), md.Bold(money(s.Last))},
		Rows: [][]string{
			{"First", money(s.First)},
			{"Low", money(s.Low)},
			{"High", money(s.High)},
			{"Mean", money(s.Mean)},
			{"Standard deviation", money(s.StdDev)},
			{"Change", change},
			{"Points", strconv.Itoa(len(c.Points))},
		},
	})
	doc.PlainText(fmt.Sprintf("Time axis: %s.", c.Policy))
	return doc.String()
}

// PeriodsMarkdown renders the menu of the chart periods.
func PeriodsMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Chart Periods")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"#", "Code", "Period", "Bars", "Ticks"},
	}
	for _, p := range assetprofile.Periods() {
		policy := assetprofile.PolicyFor(p)
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.Menu()),
			p.String(),
			p.Label(),
			p.Window().Interval,
			fmt.Sprintf("every %d %s, `%s`", policy.Every, policy.Unit, policy.LabelFormat),
		})
	}
	doc.Table(table)
	return doc.String()
}
