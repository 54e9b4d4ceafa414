// Package status periodically snapshots resource state and reports it.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-libram/internal/driver"
	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/host"
	"github.com/pixil98/go-libram/internal/property"
	"github.com/pixil98/go-libram/internal/resources/bandersnatch"
	"github.com/pixil98/go-libram/internal/resources/stompingboots"
	"github.com/pixil98/go-libram/internal/resources/terminal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Snapshot is the state gathered on one tick. Fields whose query failed
// keep their zero value and the failure is recorded in Err.
type Snapshot struct {
	HaveBandersnatch  bool
	RemainingRunaways int
	CouldRunaway      bool
	CanBootsRunaway   bool

	HaveTerminal       bool
	DigitizeRemaining  int
	DigitizeMonster    game.Monster
	DuplicateRemaining int
	EnhanceRemaining   int
	TerminalSkills     []game.Skill
	Chips              []terminal.Chip

	Err error
}

type Reporter struct {
	bander   *bandersnatch.Bandersnatch
	boots    *stompingboots.StompingBoots
	terminal *terminal.Terminal

	remaining *prometheus.GaugeVec

	mu   sync.Mutex
	last Snapshot
}

var _ driver.Manager = (*Reporter)(nil)

func NewReporter(h host.Host, props property.Store, reg prometheus.Registerer) *Reporter {
	return &Reporter{
		bander:   bandersnatch.New(h, props),
		boots:    stompingboots.New(h, props),
		terminal: terminal.New(h, props),
		remaining: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "libram_remaining_uses",
			Help: "Remaining daily uses per resource ability, as of the last tick.",
		}, []string{"ability"}),
	}
}

// Tick never fails on host or store errors; they are logged and kept in
// the snapshot.
func (r *Reporter) Tick(ctx context.Context) error {
	s := r.Snapshot(ctx)

	r.mu.Lock()
	r.last = s
	r.mu.Unlock()

	r.remaining.WithLabelValues("runaway").Set(float64(s.RemainingRunaways))
	r.remaining.WithLabelValues("digitize").Set(float64(s.DigitizeRemaining))
	r.remaining.WithLabelValues("duplicate").Set(float64(s.DuplicateRemaining))
	r.remaining.WithLabelValues("enhance").Set(float64(s.EnhanceRemaining))

	if s.Err != nil {
		slog.WarnContext(ctx, "status incomplete", "error", s.Err)
	}
	slog.InfoContext(ctx, "status",
		"bandersnatch", s.HaveBandersnatch,
		"runaways_remaining", s.RemainingRunaways,
		"could_runaway", s.CouldRunaway,
		"boots_runaway", s.CanBootsRunaway,
		"terminal", s.HaveTerminal,
		"digitize_remaining", s.DigitizeRemaining,
		"digitize_monster", s.DigitizeMonster,
		"duplicate_remaining", s.DuplicateRemaining,
		"enhance_remaining", s.EnhanceRemaining,
		"skills", s.TerminalSkills,
		"chips", s.Chips,
	)
	return nil
}

// Last returns the snapshot taken on the most recent tick.
func (r *Reporter) Last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Reporter) Snapshot(ctx context.Context) Snapshot {
	var s Snapshot
	el := errors.NewErrorList()

	record := func(name string, err error) {
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", name, err))
		}
	}

	var err error
	s.HaveBandersnatch, err = r.bander.Have(ctx)
	record("bandersnatch", err)
	if s.HaveBandersnatch {
		s.RemainingRunaways, err = r.bander.RemainingRunaways(ctx, true)
		record("runaways", err)
		s.CouldRunaway, err = r.bander.CouldRunaway(ctx, true)
		record("could runaway", err)
	}
	s.CanBootsRunaway, err = r.boots.CanRunaway(ctx)
	record("stomping boots", err)

	s.HaveTerminal, err = r.terminal.Have(ctx)
	record("terminal", err)
	if s.HaveTerminal {
		s.DigitizeRemaining, err = r.terminal.DigitizeUsesRemaining(ctx)
		record("digitize", err)
		s.DigitizeMonster, err = r.terminal.DigitizeMonster(ctx)
		record("digitize monster", err)
		s.DuplicateRemaining, err = r.terminal.DuplicateUsesRemaining(ctx)
		record("duplicate", err)
		s.EnhanceRemaining, err = r.terminal.EnhanceUsesRemaining(ctx)
		record("enhance", err)
		s.TerminalSkills, err = r.terminal.Skills(ctx)
		record("skills", err)
		s.Chips, err = r.terminal.Chips(ctx)
		record("chips", err)
	}

	s.Err = el.Err()
	return s
}
