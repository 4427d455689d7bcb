// Package chart draws price charts as SVG images.
package chart

import (
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/etnz/assetprofile"
)

// Config holds rendering parameters of a chart.
type Config struct {
	Width        int // SVG width in pixels
	Height       int // SVG height in pixels
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BgColor      string
	GridColor    string
	LineColor    string
	TextColor    string
	FontSize     int
}

// DefaultConfig returns the default rendering parameters.
func DefaultConfig() Config {
	return Config{
		Width:        900,
		Height:       450,
		MarginTop:    40,
		MarginRight:  30,
		MarginBottom: 60,
		MarginLeft:   80,
		BgColor:      "#ffffff",
		GridColor:    "#e8e8e8",
		LineColor:    "#2196f3",
		TextColor:    "#333333",
		FontSize:     11,
	}
}

// plotArea returns the usable drawing area dimensions.
func (c Config) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// gridLines is the number of horizontal grid intervals.
const gridLines = 5

// SVG renders c as a line chart titled title.
//
// The time axis is linear in time. It carries one grid line and one label
// per major tick of the chart's axis policy; minor ticks are never drawn.
func SVG(c *assetprofile.Chart, title string, cfg Config) string {
	if cfg.Width == 0 {
		cfg = DefaultConfig()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, cfg.Width, cfg.Height, cfg.BgColor)
	fmt.Fprintf(&sb, `<text x="%d" y="22" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, html.EscapeString(title))

	if len(c.Points) == 0 {
		fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="14">No data</text></svg>`,
			cfg.Width/2, cfg.Height/2)
		return sb.String()
	}

	px, py, pw, ph := cfg.plotArea()
	values := c.Values()
	s := c.Stats()
	minVal, maxVal := s.Low, s.High
	vRange := maxVal - minVal
	if vRange < 1e-9 {
		vRange = math.Max(math.Abs(maxVal), 1)
	}
	minVal -= vRange * 0.05
	maxVal += vRange * 0.05
	vRange = maxVal - minVal

	start, end := c.Points[0].Time, c.Points[len(c.Points)-1].Time
	span := end.Sub(start)
	xOf := func(t time.Time) float64 {
		if span <= 0 {
			return float64(px) + float64(pw)/2
		}
		return float64(px) + float64(t.Sub(start))/float64(span)*float64(pw)
	}
	yOf := func(v float64) float64 {
		return float64(py+ph) - (v-minVal)/vRange*float64(ph)
	}

	// value grid
	for i := 0; i <= gridLines; i++ {
		v := minVal + vRange*float64(i)/gridLines
		y := yOf(v)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor)
		fmt.Fprintf(&sb, `<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%.2f</text>`,
			px-5, y+4, cfg.FontSize, cfg.TextColor, v)
	}

	// time grid, one line per major tick
	for _, tick := range c.Ticks() {
		x := xOf(tick)
		fmt.Fprintf(&sb, `<line class="tick" x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s"/>`,
			x, py, x, py+ph, cfg.GridColor)
		fmt.Fprintf(&sb, `<text class="tick-label" x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			x, py+ph+16, cfg.FontSize, cfg.TextColor, html.EscapeString(c.Policy.Label(tick)))
	}

	// the price line
	var path []string
	for i, p := range c.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		path = append(path, fmt.Sprintf("%s%.1f,%.1f", cmd, xOf(p.Time), yOf(values[i])))
	}
	fmt.Fprintf(&sb, `<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`, strings.Join(path, " "), cfg.LineColor)

	// axes
	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`, px, py+ph, px+pw, py+ph, cfg.TextColor)
	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`, px, py, px, py+ph, cfg.TextColor)
	fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="%d" fill="%s" text-anchor="middle">Date</text>`,
		px+pw/2, cfg.Height-12, cfg.FontSize+1, cfg.TextColor)
	fmt.Fprintf(&sb, `<text x="16" y="%d" font-size="%d" fill="%s" text-anchor="middle" transform="rotate(-90 16 %d)">%s</text>`,
		py+ph/2, cfg.FontSize+1, cfg.TextColor, py+ph/2, html.EscapeString(c.ValueLabel()))

	sb.WriteString("</svg>")
	return sb.String()
}

// Write renders c into w.
func Write(w io.Writer, c *assetprofile.Chart, title string, cfg Config) error {
	_, err := io.WriteString(w, SVG(c, title, cfg))
	return err
}

// WriteFile renders c into the file name.
func WriteFile(name string, c *assetprofile.Chart, title string, cfg Config) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := Write(f, c, title, cfg); err != nil {
		f.Close()
		return fmt.Errorf("writing chart %q: %w", name, err)
	}
	return f.Close()
}

// FileName returns the default file name of a chart ("ACME-1mo.svg").
func FileName(c *assetprofile.Chart) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "=", "_")
	return fmt.Sprintf("%s-%s.svg", r.Replace(c.Symbol), c.Period)
}
