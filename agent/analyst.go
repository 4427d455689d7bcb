package agent

import (
	"context"
	"fmt"

	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model of the analyst.
const DefaultModel = "gemini-2.5-flash"

// NewAnalyst returns an expert commenting asset profiles. It can read
// profiles, charts and exchange rates through tools.
func NewAnalyst(model string, tools ...Function) *Expert {
	if model == "" {
		model = DefaultModel
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst. The user shows you the profile of a listed asset:
			a qualitative description and a table of quantitative metrics already converted
			into the user's currency ("converted <-- raw" reads as the converted value followed
			by the value in the asset's own currency, "N/A" means the provider had no data).

			Comment the valuation, the profitability and the recent price evolution in a few
			short paragraphs, in markdown. Do not invent figures: when you need one that is
			not in the profile use the tools, and say so when it is not available.
			This is not investment advice and you say it once, briefly.
		`}}},
	}
	e := &Expert{
		Name:        "Analyst",
		Description: "A financial analyst commenting on asset profiles.",
		ModelName:   model,
		Config:      config,
	}
	if len(tools) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: NewDeclaration(tools)}}
		e.Library = NewLibrary(tools)
	}
	return e
}

// Tools returns the functions reading market data through profiler. currency
// is the default target currency, the asset's own when empty.
func Tools(profiler *assetprofile.Profiler, currency string) []Function {
	return []Function{
		ProfileTool(profiler, currency),
		ChartTool(profiler, currency),
		RateTool(profiler),
	}
}

var symbolSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The ticker of the asset, e.g. AAPL, MC.PA or MCD.US.",
}

var currencySchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The ISO 4217 code of the currency of the monetary figures, e.g. EUR. Defaults to the user's currency.",
}

// ProfileTool returns the function rendering the profile of an asset.
func ProfileTool(profiler *assetprofile.Profiler, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Profile",
			Description: "Profile returns the qualitative and quantitative profile of an asset, as markdown tables.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol":   symbolSchema,
					"currency": currencySchema,
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The markdown profile."},
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			a, target, err := lookup(ctx, profiler, args, currency)
			if err != nil {
				return "", err
			}
			p, err := profiler.Profile(ctx, a, target)
			if err != nil {
				return "", err
			}
			return renderer.ProfileMarkdown(p), nil
		},
	}
}

// ChartTool returns the function summarizing the price evolution of an asset.
func ChartTool(profiler *assetprofile.Profiler, currency string) *Func {
	var codes []string
	for _, p := range assetprofile.Periods() {
		codes = append(codes, p.String())
	}
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Chart",
			Description: "Chart returns statistics on the price evolution of an asset over a period: first, last, low, high, mean, standard deviation and change.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol":   symbolSchema,
					"currency": currencySchema,
					"period": {
						Type:        genai.TypeString,
						Description: "The lookback period. Defaults to 1y.",
						Enum:        codes,
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The markdown summary of the chart."},
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			a, target, err := lookup(ctx, profiler, args, currency)
			if err != nil {
				return "", err
			}
			code, err := stringArg(args, "period", assetprofile.OneYear.String())
			if err != nil {
				return "", err
			}
			period, err := assetprofile.ParsePeriod(code)
			if err != nil {
				return "", err
			}
			rate, err := profiler.Rate(ctx, a, target)
			if err != nil {
				return "", err
			}
			c, err := profiler.Chart(ctx, a, period, rate)
			if err != nil {
				return "", err
			}
			return renderer.ChartMarkdown(c, profiler.Today(), ""), nil
		},
	}
}

// RateTool returns the function quoting an exchange rate.
func RateTool(profiler *assetprofile.Profiler) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ExchangeRate",
			Description: "ExchangeRate returns the latest exchange rate between two currencies.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": {Type: genai.TypeString, Description: "The ISO 4217 code of the source currency."},
					"to":   {Type: genai.TypeString, Description: "The ISO 4217 code of the target currency."},
				},
				Required: []string{"from", "to"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The markdown rate."},
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			from, err := stringArg(args, "from", "")
			if err != nil {
				return "", err
			}
			to, err := stringArg(args, "to", "")
			if err != nil {
				return "", err
			}
			r, err := assetprofile.RateResolver{Quoter: profiler.Provider}.Resolve(ctx, from, to)
			if err != nil {
				return "", err
			}
			return renderer.RateMarkdown(r), nil
		},
	}
}

// lookup returns the asset and the target currency of a tool call.
func lookup(ctx context.Context, profiler *assetprofile.Profiler, args map[string]any, currency string) (*assetprofile.Asset, string, error) {
	symbol, err := stringArg(args, "symbol", "")
	if err != nil {
		return nil, "", err
	}
	if symbol == "" {
		return nil, "", fmt.Errorf("argument %q is required", "symbol")
	}
	a, err := profiler.Lookup(ctx, symbol)
	if err != nil {
		return nil, "", err
	}
	target, err := stringArg(args, "currency", currency)
	if err != nil {
		return nil, "", err
	}
	if target == "" {
		target = a.Currency()
	}
	return a, target, nil
}
