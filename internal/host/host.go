package host

import (
	"context"
	"errors"

	"github.com/pixil98/go-libram/internal/game"
)

var (
	// ErrCommandFailed is returned when the game client rejects a command.
	ErrCommandFailed = errors.New("command failed")
)

// Host is the automation runtime of the game client. Queries read live
// character state; Execute runs one command and reports whether the client
// accepted it.
type Host interface {
	// Have reports whether the character owns a familiar, item or skill,
	// or is currently under an effect.
	Have(ctx context.Context, e game.Entity) (bool, error)
	// HaveInCampground reports whether an item is installed in the campground.
	HaveInCampground(ctx context.Context, item game.Item) (bool, error)
	// CurrentFamiliar returns the familiar currently in use, or "" for none.
	CurrentFamiliar(ctx context.Context) (game.Familiar, error)
	// FamiliarWeight returns the base weight of a familiar.
	FamiliarWeight(ctx context.Context, f game.Familiar) (int, error)
	// WeightAdjustment returns the total of all familiar weight modifiers.
	WeightAdjustment(ctx context.Context) (int, error)
	MyPath(ctx context.Context) (game.Path, error)
	ActiveSongs(ctx context.Context) ([]game.Effect, error)
	// CanRememberSong reports whether another song can be active at once.
	CanRememberSong(ctx context.Context) (bool, error)

	Execute(ctx context.Context, cmd Command) error
}

// IsCurrentFamiliar is a convenience over CurrentFamiliar.
func IsCurrentFamiliar(ctx context.Context, h Host, f game.Familiar) (bool, error) {
	current, err := h.CurrentFamiliar(ctx)
	if err != nil {
		return false, err
	}
	return current == f, nil
}
