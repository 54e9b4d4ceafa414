package host

import (
	"context"

	"github.com/pixil98/go-libram/internal/game"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metered counts the traffic passing through a Host.
type Metered struct {
	Host

	commands    *prometheus.CounterVec
	queryErrors *prometheus.CounterVec
}

var _ Host = (*Metered)(nil)

func NewMetered(h Host, reg prometheus.Registerer) *Metered {
	factory := promauto.With(reg)
	return &Metered{
		Host: h,
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "libram_host_commands_total",
				Help: "Commands sent to the game client by verb and outcome.",
			},
			[]string{"verb", "outcome"},
		),
		queryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "libram_host_query_errors_total",
				Help: "Failed host queries by query name.",
			},
			[]string{"query"},
		),
	}
}

func (m *Metered) Execute(ctx context.Context, cmd Command) error {
	err := m.Host.Execute(ctx, cmd)
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.commands.WithLabelValues(string(cmd.Verb()), outcome).Inc()
	return err
}

func (m *Metered) observe(query string, err error) {
	if err != nil {
		m.queryErrors.WithLabelValues(query).Inc()
	}
}

func (m *Metered) Have(ctx context.Context, e game.Entity) (bool, error) {
	v, err := m.Host.Have(ctx, e)
	m.observe("have", err)
	return v, err
}

func (m *Metered) HaveInCampground(ctx context.Context, item game.Item) (bool, error) {
	v, err := m.Host.HaveInCampground(ctx, item)
	m.observe("campground", err)
	return v, err
}

func (m *Metered) CurrentFamiliar(ctx context.Context) (game.Familiar, error) {
	v, err := m.Host.CurrentFamiliar(ctx)
	m.observe("familiar", err)
	return v, err
}

func (m *Metered) FamiliarWeight(ctx context.Context, f game.Familiar) (int, error) {
	v, err := m.Host.FamiliarWeight(ctx, f)
	m.observe("weight", err)
	return v, err
}

func (m *Metered) WeightAdjustment(ctx context.Context) (int, error) {
	v, err := m.Host.WeightAdjustment(ctx)
	m.observe("adjustment", err)
	return v, err
}

func (m *Metered) MyPath(ctx context.Context) (game.Path, error) {
	v, err := m.Host.MyPath(ctx)
	m.observe("path", err)
	return v, err
}

func (m *Metered) ActiveSongs(ctx context.Context) ([]game.Effect, error) {
	v, err := m.Host.ActiveSongs(ctx)
	m.observe("songs", err)
	return v, err
}

func (m *Metered) CanRememberSong(ctx context.Context) (bool, error) {
	v, err := m.Host.CanRememberSong(ctx)
	m.observe("song_slot", err)
	return v, err
}
