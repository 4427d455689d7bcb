package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/chart"
	"github.com/etnz/assetprofile/config"
	"github.com/etnz/assetprofile/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	currency string
	period   string
	out      string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the price evolution of an asset over a period" }
func (*chartCmd) Usage() string {
	return `fap chart [-c <currency>] [-p <period>] [-o <file.svg>] <ticker>

  Draws the price of an asset over a period as an SVG line chart, and displays
  its statistics. See 'fap periods' for the available periods.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency of the prices, defaults to the configured currency")
	f.StringVar(&c.period, "p", "", "Period of the chart (number, code or name), defaults to the configured period")
	f.StringVar(&c.out, "o", "", "SVG output file, defaults to <ticker>-<period>.svg in the configured chart directory")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	cfg, profiler, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	period := cfg.DefaultPeriod()
	if c.period != "" {
		if period, err = assetprofile.ParsePeriod(c.period); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	asset, err := profiler.Lookup(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up ticker: %v\n", err)
		return subcommands.ExitFailure
	}
	rate, err := profiler.Rate(ctx, asset, firstNonEmpty(c.currency, cfg.Currency, asset.Currency()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving exchange rate: %v\n", err)
		return subcommands.ExitFailure
	}
	ch, err := profiler.Chart(ctx, asset, period, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart: %v\n", err)
		return subcommands.ExitFailure
	}

	name, err := writeChart(ch, profiler, cfg, c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ChartMarkdown(ch, profiler.Today(), name))
	return subcommands.ExitSuccess
}

// writeChart renders ch as SVG into name, or into its default file name in
// the configured directory when name is empty. It returns the file written.
func writeChart(ch *assetprofile.Chart, profiler *assetprofile.Profiler, cfg *config.Config, name string) (string, error) {
	if name == "" {
		name = filepath.Join(cfg.Chart.Dir, chart.FileName(ch))
	}
	svg := chart.DefaultConfig()
	if cfg.Chart.Width > 0 {
		svg.Width = cfg.Chart.Width
	}
	if cfg.Chart.Height > 0 {
		svg.Height = cfg.Chart.Height
	}
	if err := chart.WriteFile(name, ch, ch.Title(profiler.Today()), svg); err != nil {
		return "", err
	}
	return name, nil
}
