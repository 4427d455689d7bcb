package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/renderer"
	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "display the latest exchange rate between two currencies" }
func (*rateCmd) Usage() string {
	return `fap rate <from> <to>

  Displays the latest exchange rate between two ISO 4217 currencies.
`
}

func (*rateCmd) SetFlags(_ *flag.FlagSet) {}

func (*rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected two currencies")
		return subcommands.ExitUsageError
	}
	_, profiler, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	rate, err := assetprofile.RateResolver{Quoter: profiler.Provider}.Resolve(ctx, firstNonEmpty(f.Arg(0)), firstNonEmpty(f.Arg(1)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving exchange rate: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RateMarkdown(rate))
	return subcommands.ExitSuccess
}
