package host

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pixil98/go-libram/internal/game"
)

// MockHost is an in-memory Host for tests. Its exported fields describe the
// character; Execute records every command and, unless ExecuteFunc says
// otherwise, applies the command's effect to that state.
type MockHost struct {
	Owned       []game.Entity
	Campground  []game.Item
	Familiar    game.Familiar
	Weights     map[game.Familiar]int
	Adjustment  int
	Path        game.Path
	Songs       []game.Effect
	MaxSongs    int
	SkillEffect map[game.Skill]game.Effect

	// QueryErr, when set, is returned from every query.
	QueryErr error
	// ExecuteFunc overrides the default command handling. Returning
	// ErrCommandFailed (or anything else) rejects the command.
	ExecuteFunc func(ctx context.Context, cmd Command) error

	// Commands records every command passed to Execute, accepted or not.
	Commands []Command

	mu sync.Mutex
}

var _ Host = (*MockHost)(nil)

func NewMockHost() *MockHost {
	return &MockHost{
		Weights:     map[game.Familiar]int{},
		MaxSongs:    3,
		SkillEffect: map[game.Skill]game.Effect{},
	}
}

func (m *MockHost) Have(_ context.Context, e game.Entity) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return false, m.QueryErr
	}
	if eff, ok := e.(game.Effect); ok && slices.Contains(m.Songs, eff) {
		return true, nil
	}
	return slices.ContainsFunc(m.Owned, func(o game.Entity) bool {
		return game.RefOf(o) == game.RefOf(e)
	}), nil
}

func (m *MockHost) HaveInCampground(_ context.Context, item game.Item) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return false, m.QueryErr
	}
	return slices.Contains(m.Campground, item), nil
}

func (m *MockHost) CurrentFamiliar(context.Context) (game.Familiar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return "", m.QueryErr
	}
	return m.Familiar, nil
}

func (m *MockHost) FamiliarWeight(_ context.Context, f game.Familiar) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return 0, m.QueryErr
	}
	return m.Weights[f], nil
}

func (m *MockHost) WeightAdjustment(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return 0, m.QueryErr
	}
	return m.Adjustment, nil
}

func (m *MockHost) MyPath(context.Context) (game.Path, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return "", m.QueryErr
	}
	return m.Path, nil
}

func (m *MockHost) ActiveSongs(context.Context) ([]game.Effect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return slices.Clone(m.Songs), nil
}

func (m *MockHost) CanRememberSong(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryErr != nil {
		return false, m.QueryErr
	}
	return len(m.Songs) < m.MaxSongs, nil
}

func (m *MockHost) Execute(ctx context.Context, cmd Command) error {
	m.mu.Lock()
	m.Commands = append(m.Commands, cmd)
	fn := m.ExecuteFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, cmd)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apply(cmd)
}

// apply mimics the client for the commands resource code issues.
func (m *MockHost) apply(cmd Command) error {
	switch c := cmd.(type) {
	case UseFamiliar:
		if !slices.Contains(m.Owned, game.Entity(c.Familiar)) {
			return fmt.Errorf("%w: %s", ErrCommandFailed, c)
		}
		m.Familiar = c.Familiar
	case Uneffect:
		i := slices.Index(m.Songs, c.Effect)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrCommandFailed, c)
		}
		m.Songs = slices.Delete(m.Songs, i, i+1)
	case CastSkill:
		eff, ok := m.SkillEffect[c.Skill]
		if !ok {
			return nil
		}
		if slices.Contains(m.Songs, eff) {
			return nil
		}
		if len(m.Songs) >= m.MaxSongs {
			return fmt.Errorf("%w: %s", ErrCommandFailed, c)
		}
		m.Songs = append(m.Songs, eff)
	}
	return nil
}

// Reset clears recorded commands.
func (m *MockHost) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = nil
}

// Executed returns a copy of the recorded commands.
func (m *MockHost) Executed() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.Commands)
}
