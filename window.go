package assetprofile

// Window is a provider request window: a lookback range and a bar interval,
// using the range and interval codes of Yahoo Finance ("5d", "1h", "1mo").
type Window struct {
	Range    string
	Interval string
}

// LatestWindow is the window used to read the current price and exchange rates.
var LatestWindow = Window{Range: "1d", Interval: "1d"}

func (w Window) String() string { return w.Range + "/" + w.Interval }
