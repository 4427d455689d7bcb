package cmd

import (
	"github.com/etnz/assetprofile"
	"github.com/etnz/assetprofile/config"
	"github.com/etnz/assetprofile/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the fap command line. Tickers
// cannot be predicted, the other arguments and the flags are.
func Completion() *complete.Command {
	var periods predict.Set
	for _, p := range assetprofile.Periods() {
		periods = append(periods, p.String())
	}
	topics, _ := docs.GetAllTopics()
	currency := predict.Something

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"provider": predict.Set(config.Providers),
			"currency": currency,
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"profile": {Flags: map[string]complete.Predictor{"c": currency, "html": predict.Files("*.html")}, Args: predict.Something},
			"chart":   {Flags: map[string]complete.Predictor{"c": currency, "p": periods, "o": predict.Files("*.svg")}, Args: predict.Something},
			"rate":    {Args: predict.Something},
			"session": {Flags: map[string]complete.Predictor{"c": currency}},
			"assist":  {Flags: map[string]complete.Predictor{"c": currency, "i": predict.Nothing}, Args: predict.Something},
			"periods": {},
			"topic":   {Args: predict.Set(topics)},
		},
	}
}
