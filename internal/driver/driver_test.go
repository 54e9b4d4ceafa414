package driver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type countingManager struct {
	ticks atomic.Int32
	err   error
}

func (m *countingManager) Tick(context.Context) error {
	m.ticks.Add(1)
	return m.err
}

func TestDriver_Tick(t *testing.T) {
	tests := map[string]struct {
		managers []*countingManager
		expTicks []int32
		expErr   string
	}{
		"all managers ticked": {
			managers: []*countingManager{{}, {}},
			expTicks: []int32{1, 1},
		},
		"stops at first error": {
			managers: []*countingManager{{err: errors.New("boom")}, {}},
			expTicks: []int32{1, 0},
			expErr:   "boom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var managers []Manager
			for _, m := range tt.managers {
				managers = append(managers, m)
			}

			err := NewDriver(managers).Tick(context.Background())
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for i, m := range tt.managers {
				testutil.AssertEqual(t, "ticks", m.ticks.Load(), tt.expTicks[i])
			}
		})
	}
}

func TestDriver_Start(t *testing.T) {
	m := &countingManager{}
	d := NewDriver([]Manager{m}, WithTickLength(10*time.Millisecond), WithImmediateTick())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	deadline := time.After(2 * time.Second)
	for m.ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d ticks before deadline", m.ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDriver_StartStopsOnError(t *testing.T) {
	m := &countingManager{err: errors.New("host gone")}
	d := NewDriver([]Manager{m}, WithTickLength(time.Hour), WithImmediateTick())

	err := d.Start(context.Background())
	testutil.AssertErrorContains(t, err, "host gone")
}
