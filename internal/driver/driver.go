package driver

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultTickLength = time.Second
)

type Ticker interface {
	Tick(context.Context) error
}

// Driver ticks its tickers in order on a fixed interval.
type Driver struct {
	tickLength time.Duration
	tickers    []Ticker
}

func NewDriver(tickers []Ticker, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start ticks until ctx is cancelled or a ticker fails.
func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	for i, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return fmt.Errorf("ticker %d: %w", i, err)
		}
	}
	return nil
}
