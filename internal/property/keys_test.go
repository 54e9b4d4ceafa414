package property

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-testutil"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestIntKey_Get(t *testing.T) {
	tests := map[string]struct {
		raw    map[string]string
		exp    int
		expErr error
	}{
		"missing reads as zero": {
			raw: map[string]string{},
			exp: 0,
		},
		"positive": {
			raw: map[string]string{"_banderRunaways": "3"},
			exp: 3,
		},
		"surrounding whitespace": {
			raw: map[string]string{"_banderRunaways": " 7\n"},
			exp: 7,
		},
		"negative": {
			raw: map[string]string{"_banderRunaways": "-2"},
			exp: -2,
		},
		"not a number": {
			raw:    map[string]string{"_banderRunaways": "three"},
			expErr: ErrInvalidValue,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := BanderRunaways.Get(context.Background(), NewMemoryStore(tt.raw))

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Errorf("expected %v, got %v", tt.expErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "value", got, tt.exp)
		})
	}
}

func TestListKey_Get(t *testing.T) {
	tests := map[string]struct {
		raw string
		exp []string
	}{
		"empty": {
			raw: "",
			exp: nil,
		},
		"single": {
			raw: "TRAM",
			exp: []string{"TRAM"},
		},
		"several": {
			raw: "INGRAM,DIAGRAM,CRAM",
			exp: []string{"INGRAM", "DIAGRAM", "CRAM"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewMemoryStore(map[string]string{"sourceTerminalChips": tt.raw})
			got, err := SourceTerminalChips.Get(context.Background(), s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.exp) {
				t.Errorf("got %v, expected %v", got, tt.exp)
			}
		})
	}
}

func TestKeys_SetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	if err := SourceTerminalPram.Set(ctx, s, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SourceTerminalChips.Set(ctx, s, []string{"TRAM", "TRIGRAM"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SourceTerminalDigitizeMonster.Set(ctx, s, game.Monster("Witchess Knight")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SourceTerminalEducate1.Set(ctx, s, "digitize.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := s.Get(ctx, "sourceTerminalChips")
	testutil.AssertEqual(t, "raw chips", raw, "TRAM,TRIGRAM")

	pram, err := SourceTerminalPram.Get(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "pram", pram, 4)

	monster, err := SourceTerminalDigitizeMonster.Get(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "monster", monster, game.Monster("Witchess Knight"))

	edu, err := SourceTerminalEducate1.Get(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "educate", edu, "digitize.edu")
}

func TestKeys_StoreError(t *testing.T) {
	ctx := context.Background()

	_, err := BanderRunaways.Get(ctx, failingStore{})
	testutil.AssertErrorContains(t, err, "reading _banderRunaways")

	_, err = SourceTerminalChips.Get(ctx, failingStore{})
	testutil.AssertErrorContains(t, err, "reading sourceTerminalChips")

	_, err = SourceTerminalDigitizeMonster.Get(ctx, failingStore{})
	testutil.AssertErrorContains(t, err, "connection refused")
}
