// Package terminal wraps the Source terminal, a campground item offering
// buffs, skills and items through a handful of programs.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/host"
	"github.com/pixil98/go-libram/internal/property"
)

var (
	ErrUnknownBuff  = errors.New("not a terminal buff")
	ErrUnknownSkill = errors.New("not a terminal skill")
	ErrUnknownItem  = errors.New("not a terminal item")
)

const skillFileSuffix = ".edu"

type Terminal struct {
	host  host.Host
	props property.Store
}

func New(h host.Host, props property.Store) *Terminal {
	return &Terminal{host: h, props: props}
}

// Have reports whether the terminal is installed in the campground.
func (t *Terminal) Have(ctx context.Context) (bool, error) {
	return t.host.HaveInCampground(ctx, Item)
}

func (t *Terminal) Enhance(ctx context.Context, buff game.Effect) error {
	if !slices.Contains(buffList, buff) {
		return fmt.Errorf("%w: %s", ErrUnknownBuff, buff)
	}
	return t.host.Execute(ctx, host.Terminal(host.TerminalEnhance, buff.Name()))
}

func (t *Terminal) Enquiry(ctx context.Context, buff game.Effect) error {
	if !slices.Contains(rolloverBuffList, buff) {
		return fmt.Errorf("%w: %s", ErrUnknownBuff, buff)
	}
	return t.host.Execute(ctx, host.Terminal(host.TerminalEnquiry, buff.Name()))
}

// Educate makes the given skills (at most two) the current terminal
// skills. Nothing is sent when they already are, in the same order.
// Rejected educate commands are logged but not reported.
func (t *Terminal) Educate(ctx context.Context, skills ...game.Skill) error {
	if len(skills) > 2 {
		skills = skills[:2]
	}

	current, err := t.Skills(ctx)
	if err != nil {
		return err
	}
	if slices.Equal(current, skills) {
		return nil
	}

	for _, s := range skills {
		if !slices.Contains(skillList, s) {
			return fmt.Errorf("%w: %s", ErrUnknownSkill, s)
		}
	}

	for _, s := range skills {
		cmd := host.Terminal(host.TerminalEducate, strings.ToLower(s.Name())+skillFileSuffix)
		if err := t.host.Execute(ctx, cmd); err != nil {
			slog.WarnContext(ctx, "educate command failed", "skill", s, "error", err)
		}
	}
	return nil
}

// Skills returns the current terminal skills in slot order.
func (t *Terminal) Skills(ctx context.Context) ([]game.Skill, error) {
	var skills []game.Skill
	for _, key := range []property.StringKey{property.SourceTerminalEducate1, property.SourceTerminalEducate2} {
		v, err := key.Get(ctx, t.props)
		if err != nil {
			return nil, err
		}
		if v == "" {
			continue
		}
		skills = append(skills, skillFromFile(v))
	}
	return skills, nil
}

// skillFromFile maps "digitize.edu" to Digitize. Unknown names are kept.
func skillFromFile(file string) game.Skill {
	name := strings.TrimSuffix(file, skillFileSuffix)
	for _, s := range skillList {
		if strings.EqualFold(s.Name(), name) {
			return s
		}
	}
	return game.Skill(name)
}

// IsCurrentSkill reports whether every given skill (at most two) is
// currently known, in any order.
func (t *Terminal) IsCurrentSkill(ctx context.Context, skills ...game.Skill) (bool, error) {
	if len(skills) > 2 {
		skills = skills[:2]
	}
	current, err := t.Skills(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range skills {
		if !slices.Contains(current, s) {
			return false, nil
		}
	}
	return true, nil
}

func (t *Terminal) Extrude(ctx context.Context, item game.Item) error {
	file, ok := Items[item]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, item)
	}
	return t.host.Execute(ctx, host.Terminal(host.TerminalExtrude, file))
}

// Chips returns the installed chips. Names are not checked against the
// known chips.
func (t *Terminal) Chips(ctx context.Context) ([]Chip, error) {
	raw, err := property.SourceTerminalChips.Get(ctx, t.props)
	if err != nil {
		return nil, err
	}
	chips := make([]Chip, 0, len(raw))
	for _, c := range raw {
		chips = append(chips, Chip(c))
	}
	return chips, nil
}

func (t *Terminal) countChips(ctx context.Context, want ...Chip) (int, error) {
	chips, err := t.Chips(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range chips {
		if slices.Contains(want, c) {
			n++
		}
	}
	return n, nil
}

func (t *Terminal) hasChip(ctx context.Context, chip Chip) (bool, error) {
	chips, err := t.Chips(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(chips, chip), nil
}

func (t *Terminal) EnhanceUses(ctx context.Context) (int, error) {
	return property.SourceTerminalEnhanceUses.Get(ctx, t.props)
}

// MaximumEnhanceUses is one plus one per CRAM or SCRAM chip.
func (t *Terminal) MaximumEnhanceUses(ctx context.Context) (int, error) {
	n, err := t.countChips(ctx, ChipCram, ChipScram)
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

func (t *Terminal) EnhanceUsesRemaining(ctx context.Context) (int, error) {
	return remaining(ctx, t.MaximumEnhanceUses, t.EnhanceUses)
}

func (t *Terminal) EnhanceBuffDuration(ctx context.Context) (int, error) {
	pram, err := property.SourceTerminalPram.Get(ctx, t.props)
	if err != nil {
		return 0, err
	}
	ingram, err := t.hasChip(ctx, ChipIngram)
	if err != nil {
		return 0, err
	}
	d := 25 + 5*pram
	if ingram {
		d += 25
	}
	return d, nil
}

func (t *Terminal) EnquiryBuffDuration(ctx context.Context) (int, error) {
	gram, err := property.SourceTerminalGram.Get(ctx, t.props)
	if err != nil {
		return 0, err
	}
	diagram, err := t.hasChip(ctx, ChipDiagram)
	if err != nil {
		return 0, err
	}
	d := 50 + 10*gram
	if diagram {
		d += 50
	}
	return d, nil
}

func (t *Terminal) DuplicateUses(ctx context.Context) (int, error) {
	return property.SourceTerminalDuplicateUses.Get(ctx, t.props)
}

// MaximumDuplicateUses is five in The Source and one elsewhere.
func (t *Terminal) MaximumDuplicateUses(ctx context.Context) (int, error) {
	path, err := t.host.MyPath(ctx)
	if err != nil {
		return 0, err
	}
	if path == game.Path("The Source") {
		return 5, nil
	}
	return 1, nil
}

func (t *Terminal) DuplicateUsesRemaining(ctx context.Context) (int, error) {
	return remaining(ctx, t.MaximumDuplicateUses, t.DuplicateUses)
}

func (t *Terminal) PortscanUses(ctx context.Context) (int, error) {
	return property.SourceTerminalPortscanUses.Get(ctx, t.props)
}

// remaining is max minus used. It is not clamped.
func remaining(ctx context.Context, maxFn, usedFn func(context.Context) (int, error)) (int, error) {
	m, err := maxFn(ctx)
	if err != nil {
		return 0, err
	}
	used, err := usedFn(ctx)
	if err != nil {
		return 0, err
	}
	return m - used, nil
}
