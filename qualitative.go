package assetprofile

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DescriptionLimit is the default maximum number of characters of the
// business description.
const DescriptionLimit = 500

// Entry is a labelled line of the qualitative profile.
type Entry struct {
	Label string
	Value string
}

// QualitativeProfile is the ordered, currency independent description of an asset.
type QualitativeProfile []Entry

// Get returns the value of the entry with the given label.
func (q QualitativeProfile) Get(label string) (string, bool) {
	for _, e := range q {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// BuildQualitative describes info with the default description limit.
func BuildQualitative(info AssetInfo) QualitativeProfile {
	return QualitativeBuilder{DescriptionLimit: DescriptionLimit}.Build(info)
}

// QualitativeBuilder maps raw asset fields to a human readable description.
type QualitativeBuilder struct {
	DescriptionLimit int // in characters, no truncation when <= 0.
}

// Build returns the qualitative profile of info. Every missing field, or
// composite field with a missing part, is rendered as NotAvailable.
func (b QualitativeBuilder) Build(info AssetInfo) QualitativeProfile {
	text := func(field string) string { return orNA(info.String(field)) }
	day := func(field string) string {
		d, ok := info.Date(field)
		return orNA(d.String(), ok)
	}

	return QualitativeProfile{
		{"Company name", text("longName")},
		{"Ticker", text("symbol")},
		{"Type of Asset", orNA(mapString(info, "quoteType", capitalize))},
		// providers carry no creation date, it is usually in the description.
		{"Year of creation", "(Go to Description)"},
		{"Head of Office", orNA(composite(info, "{city} ({state}), {country} ({address1}, {zip})"))},
		{"Website", text("website")},
		{"Sector", text("sector")},
		{"Industry", text("industry")},
		{"Country", text("country")},
		{"Exchange", orNA(composite(info, "{fullExchangeName} ({exchange}, {exchangeTimezoneName})"))},
		{"ISO Currency Code", text("currency")},
		{"Ex-Dividend Date", day("exDividendDate")},
		{"Dividend Date", day("dividendDate")},
		{"Next Fiscal Year End", day("nextFiscalYearEnd")},
		{"Next publication of results", b.earnings(info)},
		{"Description", orNA(mapString(info, "longBusinessSummary", b.truncate))},
	}
}

// earnings prints the earnings date as a day when it can be read as one, and
// verbatim otherwise.
func (b QualitativeBuilder) earnings(info AssetInfo) string {
	if d, ok := info.Date("earningsDate"); ok {
		return d.String()
	}
	return orNA(info.String("earningsDate"))
}

// truncate cuts s to the description limit, appending "..." only when
// something was removed.
func (b QualitativeBuilder) truncate(s string) string {
	if b.DescriptionLimit <= 0 || utf8.RuneCountInString(s) <= b.DescriptionLimit {
		return s
	}
	r := []rune(s)
	return string(r[:b.DescriptionLimit]) + "..."
}

// composite expands a "{field}" template. It is available only when every
// referenced field is.
func composite(info AssetInfo, template string) (string, bool) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), true
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			panic(fmt.Sprintf("unterminated field in template %q", template))
		}
		b.WriteString(rest[:open])
		v, ok := info.String(rest[open+1 : open+end])
		if !ok {
			return "", false
		}
		b.WriteString(v)
		rest = rest[open+end+1:]
	}
}

func mapString(info AssetInfo, field string, f func(string) string) (string, bool) {
	s, ok := info.String(field)
	if !ok {
		return "", false
	}
	return f(s), true
}

// capitalize returns s with an uppercase first letter and the rest in lowercase ("EQUITY" -> "Equity").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}

func orNA(s string, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return s
}
