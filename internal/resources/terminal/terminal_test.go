package terminal

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/host"
	"github.com/pixil98/go-libram/internal/property"
	"github.com/pixil98/go-testutil"
)

func newTerminal(props map[string]string) (*Terminal, *host.MockHost) {
	m := host.NewMockHost()
	m.Campground = []game.Item{Item}
	return New(m, property.NewMemoryStore(props)), m
}

func TestValidate(t *testing.T) {
	dict, err := game.DefaultDictionary()
	if err != nil {
		t.Fatalf("loading dictionary: %v", err)
	}
	if err := Validate(dict); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTerminal_Have(t *testing.T) {
	term, m := newTerminal(nil)
	have, err := term.Have(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "installed", have, true)

	m.Campground = nil
	m.Owned = []game.Entity{Item}
	have, err = term.Have(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "only in inventory", have, false)
}

func TestTerminal_Buffs(t *testing.T) {
	tests := map[string]struct {
		run         func(context.Context, *Terminal) error
		expCommands []host.Command
		expErr      error
	}{
		"enhance": {
			run:         func(ctx context.Context, t *Terminal) error { return t.Enhance(ctx, Buffs.Items) },
			expCommands: []host.Command{host.Terminal(host.TerminalEnhance, "items.enh")},
		},
		"enhance with rollover buff": {
			run:    func(ctx context.Context, t *Terminal) error { return t.Enhance(ctx, RolloverBuffs.Stats) },
			expErr: ErrUnknownBuff,
		},
		"enquiry": {
			run:         func(ctx context.Context, t *Terminal) error { return t.Enquiry(ctx, RolloverBuffs.Familiar) },
			expCommands: []host.Command{host.Terminal(host.TerminalEnquiry, "familiar.enq")},
		},
		"enquiry with enhance buff": {
			run:    func(ctx context.Context, t *Terminal) error { return t.Enquiry(ctx, Buffs.Meat) },
			expErr: ErrUnknownBuff,
		},
		"extrude": {
			run:         func(ctx context.Context, t *Terminal) error { return t.Extrude(ctx, "Source terminal TRAM chip") },
			expCommands: []host.Command{host.Terminal(host.TerminalExtrude, "tram.ext")},
		},
		"extrude unknown item": {
			run:    func(ctx context.Context, t *Terminal) error { return t.Extrude(ctx, "seal tooth") },
			expErr: ErrUnknownItem,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, m := newTerminal(nil)

			err := tt.run(context.Background(), term)
			if tt.expErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expErr != nil && !errors.Is(err, tt.expErr) {
				t.Fatalf("error = %v, expected %v", err, tt.expErr)
			}

			if got := m.Executed(); !slices.Equal(got, tt.expCommands) {
				t.Errorf("commands = %v, expected %v", got, tt.expCommands)
			}
		})
	}
}

func TestTerminal_Educate(t *testing.T) {
	tests := map[string]struct {
		educate1    string
		educate2    string
		skills      []game.Skill
		failCmds    bool
		expCommands []host.Command
		expErr      error
	}{
		"already current": {
			educate1: "digitize.edu",
			educate2: "extract.edu",
			skills:   []game.Skill{Skills.Digitize, Skills.Extract},
		},
		"same skills other order": {
			educate1: "digitize.edu",
			educate2: "extract.edu",
			skills:   []game.Skill{Skills.Extract, Skills.Digitize},
			expCommands: []host.Command{
				host.Terminal(host.TerminalEducate, "extract.edu"),
				host.Terminal(host.TerminalEducate, "digitize.edu"),
			},
		},
		"single skill against a pair": {
			educate1: "digitize.edu",
			educate2: "extract.edu",
			skills:   []game.Skill{Skills.Digitize},
			expCommands: []host.Command{
				host.Terminal(host.TerminalEducate, "digitize.edu"),
			},
		},
		"single skill already sole skill": {
			educate1: "turbo.edu",
			skills:   []game.Skill{Skills.Turbo},
		},
		"only first two considered": {
			skills: []game.Skill{Skills.Portscan, Skills.Duplicate, Skills.Turbo},
			expCommands: []host.Command{
				host.Terminal(host.TerminalEducate, "portscan.edu"),
				host.Terminal(host.TerminalEducate, "duplicate.edu"),
			},
		},
		"invalid skill issues nothing": {
			skills: []game.Skill{Skills.Compress, "The Ode to Booze"},
			expErr: ErrUnknownSkill,
		},
		"failed commands still succeed": {
			skills:   []game.Skill{Skills.Compress},
			failCmds: true,
			expCommands: []host.Command{
				host.Terminal(host.TerminalEducate, "compress.edu"),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, m := newTerminal(map[string]string{
				"sourceTerminalEducate1": tt.educate1,
				"sourceTerminalEducate2": tt.educate2,
			})
			if tt.failCmds {
				m.ExecuteFunc = func(context.Context, host.Command) error { return host.ErrCommandFailed }
			}

			err := term.Educate(context.Background(), tt.skills...)
			if tt.expErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expErr != nil && !errors.Is(err, tt.expErr) {
				t.Fatalf("error = %v, expected %v", err, tt.expErr)
			}

			if got := m.Executed(); !slices.Equal(got, tt.expCommands) {
				t.Errorf("commands = %v, expected %v", got, tt.expCommands)
			}
		})
	}
}

func TestTerminal_Skills(t *testing.T) {
	tests := map[string]struct {
		educate1   string
		educate2   string
		expSkills  []game.Skill
		query      []game.Skill
		expCurrent bool
	}{
		"none": {
			query: []game.Skill{Skills.Digitize},
		},
		"second slot only": {
			educate2:   "portscan.edu",
			expSkills:  []game.Skill{Skills.Portscan},
			query:      []game.Skill{Skills.Portscan},
			expCurrent: true,
		},
		"both slots in order": {
			educate1:   "turbo.edu",
			educate2:   "extract.edu",
			expSkills:  []game.Skill{Skills.Turbo, Skills.Extract},
			query:      []game.Skill{Skills.Extract, Skills.Turbo},
			expCurrent: true,
		},
		"subset is current": {
			educate1:   "turbo.edu",
			educate2:   "extract.edu",
			expSkills:  []game.Skill{Skills.Turbo, Skills.Extract},
			query:      []game.Skill{Skills.Extract},
			expCurrent: true,
		},
		"partial overlap is not current": {
			educate1:  "turbo.edu",
			educate2:  "extract.edu",
			expSkills: []game.Skill{Skills.Turbo, Skills.Extract},
			query:     []game.Skill{Skills.Extract, Skills.Digitize},
		},
		"unknown file kept": {
			educate1:  "defrag.edu",
			expSkills: []game.Skill{"defrag"},
			query:     []game.Skill{Skills.Digitize},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, _ := newTerminal(map[string]string{
				"sourceTerminalEducate1": tt.educate1,
				"sourceTerminalEducate2": tt.educate2,
			})
			ctx := context.Background()

			skills, err := term.Skills(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(skills, tt.expSkills) {
				t.Errorf("skills = %v, expected %v", skills, tt.expSkills)
			}

			current, err := term.IsCurrentSkill(ctx, tt.query...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "current", current, tt.expCurrent)
		})
	}
}

func TestTerminal_Capacities(t *testing.T) {
	tests := map[string]struct {
		props          map[string]string
		path           game.Path
		expChips       []Chip
		expDigitizeMax int
		expDigitizeRem int
		expDuplicate   int
		expEnhanceMax  int
		expEnhanceRem  int
		expEnhanceDur  int
		expEnquiryDur  int
	}{
		"no chips": {
			props:          map[string]string{},
			expChips:       []Chip{},
			expDigitizeMax: 1,
			expDigitizeRem: 1,
			expDuplicate:   1,
			expEnhanceMax:  1,
			expEnhanceRem:  1,
			expEnhanceDur:  25,
			expEnquiryDur:  50,
		},
		"fully upgraded": {
			props: map[string]string{
				"sourceTerminalChips":          "INGRAM,DIAGRAM,ASHRAM,SCRAM,TRIGRAM,CRAM,DRAM,TRAM",
				"sourceTerminalPram":           "10",
				"sourceTerminalGram":           "10",
				"_sourceTerminalDigitizeUses":  "1",
				"_sourceTerminalEnhanceUses":   "1",
				"_sourceTerminalDuplicateUses": "1",
			},
			path:           "The Source",
			expChips:       []Chip{ChipIngram, ChipDiagram, ChipAshram, ChipScram, ChipTrigram, ChipCram, ChipDram, ChipTram},
			expDigitizeMax: 3,
			expDigitizeRem: 2,
			expDuplicate:   4,
			expEnhanceMax:  3,
			expEnhanceRem:  2,
			expEnhanceDur:  100,
			expEnquiryDur:  200,
		},
		"overused is negative": {
			props: map[string]string{
				"sourceTerminalChips":          "TRAM",
				"_sourceTerminalDigitizeUses":  "3",
				"_sourceTerminalDuplicateUses": "2",
			},
			path:           "Avatar of Boris",
			expChips:       []Chip{ChipTram},
			expDigitizeMax: 2,
			expDigitizeRem: -1,
			expDuplicate:   -1,
			expEnhanceMax:  1,
			expEnhanceRem:  1,
			expEnhanceDur:  25,
			expEnquiryDur:  50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, m := newTerminal(tt.props)
			m.Path = tt.path
			ctx := context.Background()

			chips, err := term.Chips(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(chips, tt.expChips) {
				t.Errorf("chips = %v, expected %v", chips, tt.expChips)
			}

			check := func(name string, fn func(context.Context) (int, error), exp int) {
				t.Helper()
				got, err := fn(ctx)
				if err != nil {
					t.Fatalf("%s: unexpected error: %v", name, err)
				}
				testutil.AssertEqual(t, name, got, exp)
			}
			check("digitize max", term.MaximumDigitizeUses, tt.expDigitizeMax)
			check("digitize remaining", term.DigitizeUsesRemaining, tt.expDigitizeRem)
			check("duplicate remaining", term.DuplicateUsesRemaining, tt.expDuplicate)
			check("enhance max", term.MaximumEnhanceUses, tt.expEnhanceMax)
			check("enhance remaining", term.EnhanceUsesRemaining, tt.expEnhanceRem)
			check("enhance duration", term.EnhanceBuffDuration, tt.expEnhanceDur)
			check("enquiry duration", term.EnquiryBuffDuration, tt.expEnquiryDur)
		})
	}
}

func TestTerminal_InvalidCounter(t *testing.T) {
	term, _ := newTerminal(map[string]string{"_sourceTerminalPortscanUses": "three"})

	_, err := term.PortscanUses(context.Background())
	if !errors.Is(err, property.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}
