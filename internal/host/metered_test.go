package host

import (
	"context"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetered(t *testing.T) {
	mock := NewMockHost()
	mock.ExecuteFunc = func(_ context.Context, cmd Command) error {
		if cmd.Verb() == VerbFamiliar {
			return ErrCommandFailed
		}
		return nil
	}

	m := NewMetered(mock, prometheus.NewRegistry())
	ctx := context.Background()

	_ = m.Execute(ctx, Terminal(TerminalExtrude, "food.ext"))
	_ = m.Execute(ctx, Terminal(TerminalExtrude, "booze.ext"))
	_ = m.Execute(ctx, UseFamiliar{Familiar: "Mosquito"})

	testutil.AssertEqual(t, "terminal ok",
		promtest.ToFloat64(m.commands.WithLabelValues("terminal", "ok")), 2.0)
	testutil.AssertEqual(t, "familiar failed",
		promtest.ToFloat64(m.commands.WithLabelValues("familiar", "failed")), 1.0)

	mock.QueryErr = errors.New("timeout")
	_, err := m.MyPath(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	_, _ = m.WeightAdjustment(ctx)
	_, _ = m.MyPath(ctx)

	testutil.AssertEqual(t, "path errors",
		promtest.ToFloat64(m.queryErrors.WithLabelValues("path")), 2.0)
	testutil.AssertEqual(t, "adjustment errors",
		promtest.ToFloat64(m.queryErrors.WithLabelValues("adjustment")), 1.0)
	testutil.AssertEqual(t, "recorded commands", len(mock.Executed()), 3)
}
