package terminal

import (
	"context"

	"github.com/pixil98/go-libram/internal/copier"
	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/property"
)

func (t *Terminal) DigitizeUses(ctx context.Context) (int, error) {
	return property.SourceTerminalDigitizeUses.Get(ctx, t.props)
}

// DigitizeMonster returns the digitized monster, or "" for none.
func (t *Terminal) DigitizeMonster(ctx context.Context) (game.Monster, error) {
	return property.SourceTerminalDigitizeMonster.Get(ctx, t.props)
}

// DigitizeMonsterCount is how many times the digitized monster has shown
// up since the last cast.
func (t *Terminal) DigitizeMonsterCount(ctx context.Context) (int, error) {
	return property.SourceTerminalDigitizeMonsterCount.Get(ctx, t.props)
}

func (t *Terminal) MaximumDigitizeUses(ctx context.Context) (int, error) {
	n, err := t.countChips(ctx, ChipTram)
	if err != nil {
		return 0, err
	}
	m, err := t.countChips(ctx, ChipTrigram)
	if err != nil {
		return 0, err
	}
	return 1 + min(n, 1) + min(m, 1), nil
}

func (t *Terminal) DigitizeUsesRemaining(ctx context.Context) (int, error) {
	return remaining(ctx, t.MaximumDigitizeUses, t.DigitizeUses)
}

func (t *Terminal) CouldDigitize(ctx context.Context) (bool, error) {
	left, err := t.DigitizeUsesRemaining(ctx)
	if err != nil {
		return false, err
	}
	return left > 0, nil
}

// CanDigitize ignores MP cost.
func (t *Terminal) CanDigitize(ctx context.Context) (bool, error) {
	could, err := t.CouldDigitize(ctx)
	if err != nil || !could {
		return false, err
	}
	return t.IsCurrentSkill(ctx, Skills.Digitize)
}

// PrepareDigitize learns Digitize if it is not already a current skill.
func (t *Terminal) PrepareDigitize(ctx context.Context) error {
	current, err := t.IsCurrentSkill(ctx, Skills.Digitize)
	if err != nil || current {
		return err
	}
	return t.Educate(ctx, Skills.Digitize)
}

func (t *Terminal) Digitize() *copier.Copier[game.Monster] {
	return copier.New(t.CouldDigitize, t.PrepareDigitize, t.CanDigitize, t.DigitizeMonster)
}
