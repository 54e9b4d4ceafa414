package driver

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultTickLength = time.Minute
)

// Manager is something the driver ticks on every interval.
type Manager interface {
	Tick(context.Context) error
}

// Driver ticks its managers on a fixed interval until its context ends.
type Driver struct {
	tickLength time.Duration
	managers   []Manager
	tickNow    bool
}

func NewDriver(managers []Manager, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	if d.tickNow {
		if err := d.Tick(ctx); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

// Tick runs every manager once, stopping at the first error.
func (d *Driver) Tick(ctx context.Context) error {
	start := time.Now()
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	slog.DebugContext(ctx, "tick complete", "managers", len(d.managers), "elapsed", time.Since(start))
	return nil
}
