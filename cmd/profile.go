package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/assetprofile/renderer"
	"github.com/google/subcommands"
)

// profileCmd holds the flags for the 'profile' subcommand.
type profileCmd struct {
	currency string
	html     string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display the qualitative and quantitative profile of an asset" }
func (*profileCmd) Usage() string {
	return `fap profile [-c <currency>] [-html <file>] <ticker>

  Displays the profile of an asset, its monetary figures converted into the
  given currency (the asset's own currency by default).
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency of the monetary figures, defaults to the configured currency")
	f.StringVar(&c.html, "html", "", "also write the profile as HTML into this file")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	cfg, profiler, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	asset, err := profiler.Lookup(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up ticker: %v\n", err)
		return subcommands.ExitFailure
	}
	target := firstNonEmpty(c.currency, cfg.Currency, asset.Currency())
	profile, err := profiler.Profile(ctx, asset, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating profile: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.ProfileMarkdown(profile)
	printMarkdown(md)

	if c.html != "" {
		html, err := renderer.HTML(md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.html, []byte(html), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing HTML file %q: %v\n", c.html, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// firstNonEmpty returns the first non blank currency, upper cased.
func firstNonEmpty(currencies ...string) string {
	for _, c := range currencies {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			return c
		}
	}
	return ""
}
