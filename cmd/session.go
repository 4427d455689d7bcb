package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/renderer"
	"github.com/google/subcommands"
)

// Session is the interactive loop of fap: it asks for a ticker and a
// currency, prints the profile, charts the period the user picks, and starts
// over until the user is done.
//
// Every wrong answer is asked again. The session ends when the input is
// closed.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	Profiler *assetprofile.Profiler
	// Currency is the proposed target currency, the asset's own when empty.
	Currency string
	// Print writes markdown, verbatim when nil.
	Print func(w io.Writer, markdown string)
	// WriteChart draws a chart and returns where, charts are only summarized
	// when nil.
	WriteChart func(*assetprofile.Chart) (string, error)
}

// NewSession returns a session reading answers from r and writing to w.
func NewSession(r io.Reader, w io.Writer, profiler *assetprofile.Profiler) *Session {
	return &Session{
		in:       bufio.NewReader(r),
		out:      w,
		Profiler: profiler,
	}
}

// Run runs the session until the user stops it or closes the input.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Financial Asset Profile (%s)\n", s.Profiler.Today())
	for {
		err := s.profile(ctx)
		if err == nil {
			var again bool
			again, err = s.again()
			if err == nil && !again {
				fmt.Fprintln(s.out, "Thank you for using fap.")
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Starting over with another asset.")
	}
}

// profile runs one profile request.
func (s *Session) profile(ctx context.Context) error {
	asset, err := s.askAsset(ctx)
	if err != nil {
		return err
	}
	profile, err := s.askProfile(ctx, asset)
	if err != nil {
		return err
	}
	s.print(renderer.ProfileMarkdown(profile))
	return s.askChart(ctx, asset, profile.Rate)
}

func (s *Session) askAsset(ctx context.Context) (*assetprofile.Asset, error) {
	for {
		symbol, err := s.readLine("Ticker of the asset: ")
		if err != nil {
			return nil, err
		}
		if symbol == "" {
			fmt.Fprintln(s.out, "No ticker was entered, please try again.")
			continue
		}
		asset, err := s.Profiler.Lookup(ctx, symbol)
		switch {
		case err == nil && asset.Currency() == "":
			fmt.Fprintf(s.out, "The currency of %s is unknown, its figures cannot be converted, please choose another ticker.\n", asset.Symbol)
		case err == nil:
			return asset, nil
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, assetprofile.ErrTickerNotFound):
			fmt.Fprintf(s.out, "The ticker %s was not recognised, please check it and try again.\n", strings.ToUpper(symbol))
		default:
			fmt.Fprintf(s.out, "Error looking up %s: %v\n", strings.ToUpper(symbol), err)
		}
	}
}

func (s *Session) askProfile(ctx context.Context, asset *assetprofile.Asset) (*assetprofile.Profile, error) {
	proposed := firstNonEmpty(s.Currency, asset.Currency())
	for {
		answer, err := s.readLine(fmt.Sprintf("Your currency (%s is quoted in %s) [%s]: ", asset.Symbol, asset.Currency(), proposed))
		if err != nil {
			return nil, err
		}
		target := firstNonEmpty(answer, proposed)
		if err := assetprofile.ValidateCurrency(target); err != nil {
			fmt.Fprintf(s.out, "%v, please try again.\n", err)
			continue
		}
		profile, err := s.Profiler.Profile(ctx, asset, target)
		switch {
		case err == nil:
			return profile, nil
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			fmt.Fprintf(s.out, "Error converting into %s: %v\n", target, err)
		}
	}
}

func (s *Session) askChart(ctx context.Context, asset *assetprofile.Asset, rate assetprofile.ExchangeRate) error {
	fmt.Fprintln(s.out, "Chart period:")
	for _, p := range assetprofile.Periods() {
		fmt.Fprintf(s.out, "  %d. %s\n", p.Menu(), p.Label())
	}
	for {
		answer, err := s.readLine(fmt.Sprintf("Chart of %s over the period #", asset.Symbol))
		if err != nil {
			return err
		}
		period, err := assetprofile.ParsePeriod(answer)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice, please try again.")
			continue
		}
		c, err := s.Profiler.Chart(ctx, asset, period, rate)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, assetprofile.ErrNoPriceData):
			fmt.Fprintln(s.out, "No data is available for this period, please try again.")
			continue
		default:
			fmt.Fprintf(s.out, "Error reading prices: %v\n", err)
			continue
		}

		var image string
		if s.WriteChart != nil {
			if image, err = s.WriteChart(c); err != nil {
				fmt.Fprintf(s.out, "Error drawing chart: %v\n", err)
			}
		}
		s.print(renderer.ChartMarkdown(c, s.Profiler.Today(), image))
		return nil
	}
}

// again asks whether to profile another asset.
func (s *Session) again() (bool, error) {
	for {
		answer, err := s.readLine("Profile another asset? (y/n) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(s.out, "Please answer 'y' for yes or 'n' for no.")
	}
}

// readLine prompts and reads one trimmed line. A last line without newline
// is still an answer.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

func (s *Session) print(markdown string) {
	if s.Print != nil {
		s.Print(s.out, markdown)
		return
	}
	fmt.Fprintln(s.out, markdown)
}

// sessionCmd holds the flags for the 'session' subcommand.
type sessionCmd struct {
	currency string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "profile assets interactively" }
func (*sessionCmd) Usage() string {
	return `fap session [-c <currency>]

  Asks for a ticker and a currency, displays the profile of the asset and
  charts its price over a chosen period, then starts over.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency proposed for the monetary figures, defaults to the configured currency")
}

func (c *sessionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, profiler, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	s := NewSession(os.Stdin, os.Stdout, profiler)
	s.Currency = firstNonEmpty(c.currency, cfg.Currency)
	s.Print = fprintMarkdown
	s.WriteChart = func(ch *assetprofile.Chart) (string, error) {
		return writeChart(ch, profiler, cfg, "")
	}
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Session failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
