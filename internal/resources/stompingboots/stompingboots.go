// Package stompingboots wraps the Pair of Stomping Boots, which shares its
// free runaway counter with the Frumious Bandersnatch.
package stompingboots

import (
	"context"
	"fmt"

	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/host"
	"github.com/pixil98/go-libram/internal/property"
)

const Familiar = game.Familiar("Pair of Stomping Boots")

type StompingBoots struct {
	host  host.Host
	props property.Store
}

func New(h host.Host, props property.Store) *StompingBoots {
	return &StompingBoots{host: h, props: props}
}

func Validate(dict *game.Dictionary) error {
	return dict.Require(Familiar)
}

func (s *StompingBoots) Have(ctx context.Context) (bool, error) {
	return s.host.Have(ctx, Familiar)
}

// Runaways reads the counter shared with the Bandersnatch.
func (s *StompingBoots) Runaways(ctx context.Context) (int, error) {
	return property.BanderRunaways.Get(ctx, s.props)
}

func (s *StompingBoots) MaxRunaways(ctx context.Context, considerWeightAdjustment bool) (int, error) {
	weight, err := s.host.FamiliarWeight(ctx, Familiar)
	if err != nil {
		return 0, fmt.Errorf("familiar weight: %w", err)
	}
	if considerWeightAdjustment {
		adj, err := s.host.WeightAdjustment(ctx)
		if err != nil {
			return 0, fmt.Errorf("weight adjustment: %w", err)
		}
		weight += adj
	}

	q := weight / 5
	if weight%5 != 0 && weight < 0 {
		q--
	}
	return q, nil
}

func (s *StompingBoots) RemainingRunaways(ctx context.Context, considerWeightAdjustment bool) (int, error) {
	maxRuns, err := s.MaxRunaways(ctx, considerWeightAdjustment)
	if err != nil {
		return 0, err
	}
	used, err := s.Runaways(ctx)
	if err != nil {
		return 0, err
	}
	return max(0, maxRuns-used), nil
}

func (s *StompingBoots) CouldRunaway(ctx context.Context, considerWeightAdjustment bool) (bool, error) {
	have, err := s.Have(ctx)
	if err != nil || !have {
		return false, err
	}
	remaining, err := s.RemainingRunaways(ctx, considerWeightAdjustment)
	if err != nil {
		return false, err
	}
	return remaining > 0, nil
}

// CanRunaway needs no buff, only the boots out and a runaway left.
func (s *StompingBoots) CanRunaway(ctx context.Context) (bool, error) {
	current, err := host.IsCurrentFamiliar(ctx, s.host, Familiar)
	if err != nil || !current {
		return false, err
	}
	return s.CouldRunaway(ctx, true)
}

func (s *StompingBoots) PrepareRunaway(ctx context.Context) error {
	if err := s.host.Execute(ctx, host.UseFamiliar{Familiar: Familiar}); err != nil {
		return fmt.Errorf("using %s: %w", Familiar, err)
	}
	return nil
}
