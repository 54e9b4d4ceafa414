package driver

import "time"

type DriverOpt func(*Driver)

func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}

// WithImmediateTick ticks once on Start before waiting for the first interval.
func WithImmediateTick() DriverOpt {
	return func(d *Driver) {
		d.tickNow = true
	}
}
