package property

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-libram/internal/game"
)

// Properties with a leading underscore are daily counters; the game client
// resets them at rollover.
var (
	BanderRunaways = IntKey("_banderRunaways")

	SourceTerminalEducate1 = StringKey("sourceTerminalEducate1")
	SourceTerminalEducate2 = StringKey("sourceTerminalEducate2")
	SourceTerminalChips    = ListKey("sourceTerminalChips")
	SourceTerminalPram     = IntKey("sourceTerminalPram")
	SourceTerminalGram     = IntKey("sourceTerminalGram")

	SourceTerminalDigitizeUses         = IntKey("_sourceTerminalDigitizeUses")
	SourceTerminalDigitizeMonster      = MonsterKey("_sourceTerminalDigitizeMonster")
	SourceTerminalDigitizeMonsterCount = IntKey("_sourceTerminalDigitizeMonsterCount")
	SourceTerminalDuplicateUses        = IntKey("_sourceTerminalDuplicateUses")
	SourceTerminalEnhanceUses          = IntKey("_sourceTerminalEnhanceUses")
	SourceTerminalPortscanUses         = IntKey("_sourceTerminalPortscanUses")
)

// IntKey names an integer property. Missing values read as zero.
type IntKey string

func (k IntKey) Get(ctx context.Context, s Store) (int, error) {
	raw, err := s.Get(ctx, string(k))
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", k, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, k, raw)
	}
	return v, nil
}

func (k IntKey) Set(ctx context.Context, s Store, v int) error {
	return s.Set(ctx, string(k), strconv.Itoa(v))
}

// StringKey names a free-form string property.
type StringKey string

func (k StringKey) Get(ctx context.Context, s Store) (string, error) {
	v, err := s.Get(ctx, string(k))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", k, err)
	}
	return v, nil
}

func (k StringKey) Set(ctx context.Context, s Store, v string) error {
	return s.Set(ctx, string(k), v)
}

// ListKey names a comma separated property. An empty value is an empty list.
type ListKey string

func (k ListKey) Get(ctx context.Context, s Store) ([]string, error) {
	raw, err := s.Get(ctx, string(k))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", k, err)
	}
	if raw == "" {
		return nil, nil
	}
	return strings.Split(raw, ","), nil
}

func (k ListKey) Set(ctx context.Context, s Store, v []string) error {
	return s.Set(ctx, string(k), strings.Join(v, ","))
}

// MonsterKey names a property holding a monster name. An empty value
// means no monster.
type MonsterKey string

func (k MonsterKey) Get(ctx context.Context, s Store) (game.Monster, error) {
	v, err := s.Get(ctx, string(k))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", k, err)
	}
	return game.Monster(v), nil
}

func (k MonsterKey) Set(ctx context.Context, s Store, m game.Monster) error {
	return s.Set(ctx, string(k), m.Name())
}
