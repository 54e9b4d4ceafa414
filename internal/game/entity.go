package game

import (
	"fmt"
	"strings"
)

// Kind identifies which catalog an entity belongs to.
type Kind string

const (
	KindFamiliar Kind = "familiar"
	KindItem     Kind = "item"
	KindSkill    Kind = "skill"
	KindEffect   Kind = "effect"
	KindPath     Kind = "path"
	KindMonster  Kind = "monster"
)

// Kinds lists every entity kind in catalog load order.
var Kinds = []Kind{KindFamiliar, KindItem, KindSkill, KindEffect, KindPath, KindMonster}

func (k *Kind) UnmarshalText(text []byte) error {
	kind := Kind(strings.ToLower(string(text)))
	for _, known := range Kinds {
		if kind == known {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown entity kind: %s", text)
}

// Entity is a handle to a fixed in-game thing, identified by its canonical name.
type Entity interface {
	Kind() Kind
	Name() string
}

type (
	Familiar string
	Item     string
	Skill    string
	Effect   string
	Path     string
	// Monster is empty when no monster is referenced.
	Monster string
)

func (f Familiar) Kind() Kind   { return KindFamiliar }
func (f Familiar) Name() string { return string(f) }

func (i Item) Kind() Kind   { return KindItem }
func (i Item) Name() string { return string(i) }

func (s Skill) Kind() Kind   { return KindSkill }
func (s Skill) Name() string { return string(s) }

func (e Effect) Kind() Kind   { return KindEffect }
func (e Effect) Name() string { return string(e) }

func (p Path) Kind() Kind   { return KindPath }
func (p Path) Name() string { return string(p) }

func (m Monster) Kind() Kind   { return KindMonster }
func (m Monster) Name() string { return string(m) }

// Ref is the serialisable form of an Entity.
type Ref struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}

func RefOf(e Entity) Ref {
	return Ref{Kind: e.Kind(), Name: e.Name()}
}

// Entity converts the reference back into its typed handle.
func (r Ref) Entity() (Entity, error) {
	switch r.Kind {
	case KindFamiliar:
		return Familiar(r.Name), nil
	case KindItem:
		return Item(r.Name), nil
	case KindSkill:
		return Skill(r.Name), nil
	case KindEffect:
		return Effect(r.Name), nil
	case KindPath:
		return Path(r.Name), nil
	case KindMonster:
		return Monster(r.Name), nil
	default:
		return nil, fmt.Errorf("unknown entity kind: %q", r.Kind)
	}
}

func (r Ref) String() string {
	return fmt.Sprintf("%s %q", r.Kind, r.Name)
}
