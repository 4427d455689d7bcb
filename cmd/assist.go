package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/assetprofile/agent"
	"github.com/etnz/assetprofile/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	currency    string
	interactive bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI analyst to comment the profile of an asset" }
func (*assistCmd) Usage() string {
	return `fap assist [-c <currency>] [-i] <ticker> [<question>...]

  Sends the profile of an asset to a Gemini analyst and prints its
  commentary, or its answer to the question. With -i the conversation goes on
  until you type 'bye'.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency of the monetary figures, defaults to the configured currency")
	f.BoolVar(&c.interactive, "i", false, "keep asking questions")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected a ticker symbol")
		return subcommands.ExitUsageError
	}
	cfg, profiler, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	asset, err := profiler.Lookup(ctx, f.Arg(0))
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

	question := strings.Join(f.Args()[1:], " ")
	if question == "" {
		question = "Comment this profile."
	}
	prompt := renderer.ProfileMarkdown(profile) + "\n" + question

	var clientConfig *genai.ClientConfig
	if cfg.Assist.APIKey != "" {
		clientConfig = &genai.ClientConfig{APIKey: cfg.Assist.APIKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(cfg.Assist.Model, agent.Tools(profiler, target)...)
	analyst.Log = profiler.Log.With().Str("expert", analyst.Name).Logger()
	a := agent.New(os.Stdout, os.Stdin, analyst)
	a.Print = fprintMarkdown

	if err := a.Run(ctx, client, c.interactive, prompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
