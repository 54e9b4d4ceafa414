// Package bandersnatch wraps the Frumious Bandersnatch, a familiar that
// grants free runaways while the Ode to Booze is active.
package bandersnatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/host"
	"github.com/pixil98/go-libram/internal/property"
)

const (
	Familiar = game.Familiar("Frumious Bandersnatch")

	OdeSkill  = game.Skill("The Ode to Booze")
	OdeEffect = game.Effect("Ode to Booze")

	// WeightPerRunaway is the familiar weight needed for each daily runaway.
	WeightPerRunaway = 5
)

var (
	ErrSkillUnavailable = errors.New("skill unavailable")
)

type Bandersnatch struct {
	host  host.Host
	props property.Store
}

func New(h host.Host, props property.Store) *Bandersnatch {
	return &Bandersnatch{host: h, props: props}
}

// Validate checks that every entity used here exists in dict.
func Validate(dict *game.Dictionary) error {
	return dict.Require(Familiar, OdeSkill, OdeEffect)
}

func (b *Bandersnatch) Have(ctx context.Context) (bool, error) {
	return b.host.Have(ctx, Familiar)
}

// Runaways returns the free runaways used today. The counter is shared with
// the Pair of Stomping Boots.
func (b *Bandersnatch) Runaways(ctx context.Context) (int, error) {
	return property.BanderRunaways.Get(ctx, b.props)
}

func (b *Bandersnatch) MaxRunaways(ctx context.Context, considerWeightAdjustment bool) (int, error) {
	weight, err := b.host.FamiliarWeight(ctx, Familiar)
	if err != nil {
		return 0, fmt.Errorf("familiar weight: %w", err)
	}
	if considerWeightAdjustment {
		adj, err := b.host.WeightAdjustment(ctx)
		if err != nil {
			return 0, fmt.Errorf("weight adjustment: %w", err)
		}
		weight += adj
	}
	return floorDiv(weight, WeightPerRunaway), nil
}

func (b *Bandersnatch) RemainingRunaways(ctx context.Context, considerWeightAdjustment bool) (int, error) {
	maxRuns, err := b.MaxRunaways(ctx, considerWeightAdjustment)
	if err != nil {
		return 0, err
	}
	used, err := b.Runaways(ctx)
	if err != nil {
		return 0, err
	}
	return max(0, maxRuns-used), nil
}

// CouldRunaway reports whether a free runaway is possible in principle,
// ignoring which familiar is out and whether the Ode is active.
func (b *Bandersnatch) CouldRunaway(ctx context.Context, considerWeightAdjustment bool) (bool, error) {
	have, err := b.Have(ctx)
	if err != nil || !have {
		return false, err
	}
	remaining, err := b.RemainingRunaways(ctx, considerWeightAdjustment)
	if err != nil {
		return false, err
	}
	return remaining > 0, nil
}

// CanRunaway reports whether the next fight can be escaped for free.
func (b *Bandersnatch) CanRunaway(ctx context.Context) (bool, error) {
	current, err := host.IsCurrentFamiliar(ctx, b.host, Familiar)
	if err != nil || !current {
		return false, err
	}
	could, err := b.CouldRunaway(ctx, true)
	if err != nil || !could {
		return false, err
	}
	return b.host.Have(ctx, OdeEffect)
}

// PrepareRunaway casts the Ode to Booze if needed and takes the
// Bandersnatch out. When no song slot is free, the first active song in
// songsToRemove that can be shrugged makes room.
func (b *Bandersnatch) PrepareRunaway(ctx context.Context, songsToRemove []game.Effect) error {
	haveOde, err := b.host.Have(ctx, OdeEffect)
	if err != nil {
		return err
	}

	if !haveOde {
		knowOde, err := b.host.Have(ctx, OdeSkill)
		if err != nil {
			return err
		}
		if !knowOde {
			return fmt.Errorf("%w: %s", ErrSkillUnavailable, OdeSkill)
		}

		if err := b.makeRoom(ctx, songsToRemove); err != nil {
			return err
		}

		if err := b.host.Execute(ctx, host.Cast(OdeSkill)); err != nil {
			return fmt.Errorf("casting %s: %w", OdeSkill, err)
		}
	}

	if err := b.host.Execute(ctx, host.UseFamiliar{Familiar: Familiar}); err != nil {
		return fmt.Errorf("using %s: %w", Familiar, err)
	}
	return nil
}

func (b *Bandersnatch) makeRoom(ctx context.Context, songsToRemove []game.Effect) error {
	free, err := b.host.CanRememberSong(ctx)
	if err != nil || free {
		return err
	}

	active, err := b.host.ActiveSongs(ctx)
	if err != nil {
		return err
	}

	for _, song := range songsToRemove {
		if !slices.Contains(active, song) {
			continue
		}
		err := b.host.Execute(ctx, host.Uneffect{Effect: song})
		if err == nil {
			return nil
		}
		slog.DebugContext(ctx, "could not remove song", "song", song, "error", err)
	}
	return nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
