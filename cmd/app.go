// Package cmd implements the fap command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/config"
	"github.com/etnz/assetprofile/eodhd"
	"github.com/etnz/assetprofile/yahoo"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&profileCmd{}, "assets")
	c.Register(&chartCmd{}, "assets")
	c.Register(&rateCmd{}, "assets")
	c.Register(&sessionCmd{}, "assets")
	c.Register(&assistCmd{}, "assets")

	c.Register(&periodsCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (default fap.yaml in . or $HOME/.config/fap)")
var providerName = flag.String("provider", "", "Market data provider (yahoo, eodhd), overrides the configuration")
var defaultCurrency = flag.String("currency", "", "Default currency of the monetary figures, overrides the configuration")

// Verbose turns on debug logs.
var Verbose = flag.Bool("v", false, "verbose logs")

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	cfg.Override(*providerName, *defaultCurrency)
	if *Verbose {
		cfg.Log.Level = zerolog.LevelDebugValue
	}
	return cfg, cfg.Validate()
}

// newLogger returns the logger of the application, writing on stderr.
func newLogger(cfg *config.Config) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(cfg.Level()).With().Timestamp().Logger()
}

// newProvider returns the configured provider, throttled by the configured delay.
func newProvider(cfg *config.Config, log zerolog.Logger) (assetprofile.Provider, error) {
	var p assetprofile.Provider
	switch cfg.Provider {
	case "yahoo":
		p = yahoo.New(log)
	case "eodhd":
		if cfg.EODHD.APIKey == "" {
			return nil, fmt.Errorf("eodhd provider requires an API key: set EODHD_API_KEY or eodhd.api_key")
		}
		p = eodhd.New(cfg.EODHD.APIKey, log)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return assetprofile.NewThrottle(p, cfg.Delay, log), nil
}

// setup loads the configuration and returns the profiler of a command.
func setup() (*config.Config, *assetprofile.Profiler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cfg)
	p, err := newProvider(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	profiler := assetprofile.NewProfiler(p, log)
	profiler.Qualitative.DescriptionLimit = cfg.DescriptionLimit
	profiler.QuoteWindow = cfg.Window()
	return cfg, profiler, nil
}

// printMarkdown prints markdown on stdout, styled for the terminal.
func printMarkdown(md string) { fprintMarkdown(os.Stdout, md) }

// fprintMarkdown writes markdown styled for the terminal, verbatim when it
// cannot be styled.
func fprintMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprintln(w, md)
}

// symbolArg returns the single symbol argument of a command.
func symbolArg(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticker symbol")
		return "", false
	}
	return f.Arg(0), true
}
