package cmd

import (
	"context"
	"flag"

	"github.com/etnz/assetprofile/renderer"
	"github.com/google/subcommands"
)

type periodsCmd struct{}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "list the chart periods" }
func (*periodsCmd) Usage() string {
	return `fap periods

  Lists the chart periods with their bars and time axis ticks.
`
}

func (*periodsCmd) SetFlags(_ *flag.FlagSet) {}

func (*periodsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.PeriodsMarkdown())
	return subcommands.ExitSuccess
}
