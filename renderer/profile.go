package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/assetprofile"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// ProfileMarkdown renders the qualitative and quantitative profiles of an asset.
func ProfileMarkdown(p *assetprofile.Profile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Profile of %s (%s)", p.Asset.Name(), p.Asset.Symbol))
	doc.PlainText(fmt.Sprintf("Report of %s, monetary figures in %s.", p.On, p.Rate.To))

	doc.H2("Qualitative Profile")
	QualitativeTable(doc, p.Qualitative)

	doc.H2("Quantitative Profile")
	QuantitativeTable(doc, p.Quantitative)

	return doc.String()
}

// QualitativeTable appends the qualitative profile to doc as a two columns table.
func QualitativeTable(doc *md.Markdown, q assetprofile.QualitativeProfile) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Information", "Value"},
	}
	for _, e := range q {
		table.Rows = append(table.Rows, []string{e.Label, e.Value})
	}
	doc.Table(table)
}

// QuantitativeTable appends the quantitative profile to doc. Gains are
// printed in bold and losses in italic.
func QuantitativeTable(doc *md.Markdown, q assetprofile.QuantitativeProfile) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
	}
	for _, m := range q {
		table.Rows = append(table.Rows, []string{m.Label, Metric(m)})
	}
	doc.Table(table)
}

// Metric returns the markdown rendition of a metric value.
func Metric(m assetprofile.Metric) string {
	s := m.String()
	if !m.Valid {
		return s
	}
	switch m.Sign {
	case assetprofile.Positive:
		return md.Bold(s)
	case assetprofile.NonPositive:
		return md.Italic(s)
	default:
		return s
	}
}

// RateMarkdown renders an exchange rate.
func RateMarkdown(r assetprofile.ExchangeRate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Exchange Rate %s/%s", r.To, r.From))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("1 " + r.From), md.Bold(r.Value.StringFixed(4) + " " + r.To)},
		Rows: [][]string{
			{"1 " + r.To, inverse(r)},
		},
	})
	return doc.String()
}

func inverse(r assetprofile.ExchangeRate) string {
	if !r.IsValid() {
		return assetprofile.NotAvailable
	}
	return decimal.NewFromInt(1).Div(r.Value).StringFixed(4) + " " + r.From
}
