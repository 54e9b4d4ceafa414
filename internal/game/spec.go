package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Spec is the common shape of every catalog asset.
type Spec interface {
	Validate() error
	EntityName() string
}

type baseSpec struct {
	// Name is the canonical in-game name, used as the entity handle.
	Name string `json:"name" yaml:"name"`
	// GameId is the numeric id the game assigns, when known.
	GameId int `json:"game_id,omitempty" yaml:"game_id,omitempty"`
}

func (b *baseSpec) EntityName() string {
	return b.Name
}

func (b *baseSpec) validate() error {
	el := errors.NewErrorList()
	if b.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if b.GameId < 0 {
		el.Add(fmt.Errorf("game_id must not be negative"))
	}
	return el.Err()
}

type FamiliarSpec struct {
	baseSpec `yaml:",inline"`
}

func (s *FamiliarSpec) Validate() error {
	return s.validate()
}

type ItemSpec struct {
	baseSpec `yaml:",inline"`

	// Campground items are installed rather than carried.
	Campground bool `json:"campground,omitempty" yaml:"campground,omitempty"`
}

func (s *ItemSpec) Validate() error {
	return s.validate()
}

type SkillSpec struct {
	baseSpec `yaml:",inline"`

	// Effect granted when the skill is cast, if any.
	Effect string `json:"effect,omitempty" yaml:"effect,omitempty"`
}

func (s *SkillSpec) Validate() error {
	return s.validate()
}

type EffectSpec struct {
	baseSpec `yaml:",inline"`

	// Song effects occupy one of the player's limited song slots.
	Song bool `json:"song,omitempty" yaml:"song,omitempty"`
}

func (s *EffectSpec) Validate() error {
	return s.validate()
}

type PathSpec struct {
	baseSpec `yaml:",inline"`
}

func (s *PathSpec) Validate() error {
	return s.validate()
}

type MonsterSpec struct {
	baseSpec `yaml:",inline"`
}

func (s *MonsterSpec) Validate() error {
	return s.validate()
}
