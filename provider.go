package assetprofile

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Provider is a market data source.
//
// Lookup returns ErrTickerNotFound (possibly wrapped) for unknown symbols.
// History and Quote return an empty series when the provider has no data for
// the window.
type Provider interface {
	Quoter
	Lookup(ctx context.Context, symbol string) (AssetInfo, error)
	History(ctx context.Context, symbol string, w Window) (PriceSeries, error)
}

// Throttle wraps a provider and waits Delay before and after every call, to
// stay within the provider's rate limits.
type Throttle struct {
	Provider Provider
	Delay    time.Duration
	Log      zerolog.Logger
}

// NewThrottle returns p throttled by delay.
func NewThrottle(p Provider, delay time.Duration, log zerolog.Logger) *Throttle {
	return &Throttle{Provider: p, Delay: delay, Log: log}
}

func (t *Throttle) Lookup(ctx context.Context, symbol string) (info AssetInfo, err error) {
	err = t.around(ctx, "lookup", symbol, func() error {
		info, err = t.Provider.Lookup(ctx, symbol)
		return err
	})
	return info, err
}

func (t *Throttle) History(ctx context.Context, symbol string, w Window) (series PriceSeries, err error) {
	err = t.around(ctx, "history", symbol, func() error {
		series, err = t.Provider.History(ctx, symbol, w)
		return err
	})
	return series, err
}

func (t *Throttle) Quote(ctx context.Context, base, quote string) (series PriceSeries, err error) {
	err = t.around(ctx, "quote", base+quote, func() error {
		series, err = t.Provider.Quote(ctx, base, quote)
		return err
	})
	return series, err
}

// around runs call between two pauses. A cancelled context interrupts the
// pauses, not the call.
func (t *Throttle) around(ctx context.Context, op, symbol string, call func() error) error {
	if err := sleep(ctx, t.Delay); err != nil {
		return err
	}
	start := time.Now()
	err := call()
	t.Log.Debug().Str("op", op).Str("symbol", symbol).Dur("elapsed", time.Since(start)).Err(err).Msg("provider call")
	if serr := sleep(ctx, t.Delay); serr != nil && err == nil {
		return serr
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
