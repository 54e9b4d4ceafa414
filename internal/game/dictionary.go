package game

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-libram/internal/storage"
)

//go:embed data
var bundled embed.FS

// DefaultDictionary returns the dictionary built from the bundled catalogs.
// It is loaded once per process.
var DefaultDictionary = sync.OnceValues(func() (*Dictionary, error) {
	return LoadDictionary(bundled, "data")
})

// Dictionary holds one catalog store per entity kind and resolves names
// against them.
type Dictionary struct {
	Familiars storage.Storer[*FamiliarSpec]
	Items     storage.Storer[*ItemSpec]
	Skills    storage.Storer[*SkillSpec]
	Effects   storage.Storer[*EffectSpec]
	Paths     storage.Storer[*PathSpec]
	Monsters  storage.Storer[*MonsterSpec]

	// lower-cased name -> canonical name, per kind
	index map[Kind]map[string]string
}

// LoadDictionary reads <root>/<kind>s for every kind, e.g. root/skills.
func LoadDictionary(fsys fs.FS, root string) (*Dictionary, error) {
	d := &Dictionary{}

	var err error
	if d.Familiars, err = loadStore[*FamiliarSpec](fsys, root, KindFamiliar); err != nil {
		return nil, err
	}
	if d.Items, err = loadStore[*ItemSpec](fsys, root, KindItem); err != nil {
		return nil, err
	}
	if d.Skills, err = loadStore[*SkillSpec](fsys, root, KindSkill); err != nil {
		return nil, err
	}
	if d.Effects, err = loadStore[*EffectSpec](fsys, root, KindEffect); err != nil {
		return nil, err
	}
	if d.Paths, err = loadStore[*PathSpec](fsys, root, KindPath); err != nil {
		return nil, err
	}
	if d.Monsters, err = loadStore[*MonsterSpec](fsys, root, KindMonster); err != nil {
		return nil, err
	}

	if err := d.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving names: %w", err)
	}

	return d, nil
}

func loadStore[T storage.ValidatingSpec](fsys fs.FS, root string, kind Kind) (*storage.FileStore[T], error) {
	st, err := storage.NewFileStore[T](fsys, path.Join(root, string(kind)+"s"))
	if err != nil {
		return nil, fmt.Errorf("creating %s store: %w", kind, err)
	}
	return st, nil
}

// Resolve builds the name index. Names must be unique within a kind,
// ignoring case.
func (d *Dictionary) Resolve() error {
	el := errors.NewErrorList()

	d.index = map[Kind]map[string]string{}
	el.Add(indexStore(d, KindFamiliar, d.Familiars))
	el.Add(indexStore(d, KindItem, d.Items))
	el.Add(indexStore(d, KindSkill, d.Skills))
	el.Add(indexStore(d, KindEffect, d.Effects))
	el.Add(indexStore(d, KindPath, d.Paths))
	el.Add(indexStore(d, KindMonster, d.Monsters))

	el.Add(d.resolveSkillEffects())

	return el.Err()
}

func indexStore[T Spec](d *Dictionary, kind Kind, st storage.Storer[T]) error {
	names := map[string]string{}
	d.index[kind] = names
	if st == nil {
		return nil
	}

	el := errors.NewErrorList()
	for id, spec := range st.GetAll() {
		key := strings.ToLower(spec.EntityName())
		if prev, ok := names[key]; ok {
			el.Add(fmt.Errorf("%s %s: name %q already used by %q", kind, id, spec.EntityName(), prev))
			continue
		}
		names[key] = spec.EntityName()
	}
	return el.Err()
}

func (d *Dictionary) resolveSkillEffects() error {
	if d.Skills == nil {
		return nil
	}

	el := errors.NewErrorList()
	for id, spec := range d.Skills.GetAll() {
		if spec.Effect == "" {
			continue
		}
		if _, ok := d.index[KindEffect][strings.ToLower(spec.Effect)]; !ok {
			el.Add(fmt.Errorf("skill %s: effect %q not found", id, spec.Effect))
		}
	}
	return el.Err()
}

// Lookup resolves a name of the given kind, ignoring case, to its
// canonical handle.
func (d *Dictionary) Lookup(kind Kind, name string) (Entity, error) {
	canonical, ok := d.index[kind][strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, Ref{Kind: kind, Name: name})
	}
	return Ref{Kind: kind, Name: canonical}.Entity()
}

func (d *Dictionary) Has(e Entity) bool {
	_, err := d.Lookup(e.Kind(), e.Name())
	return err == nil
}

// Require reports every entity that the dictionary does not know.
func (d *Dictionary) Require(entities ...Entity) error {
	el := errors.NewErrorList()
	for _, e := range entities {
		canonical, err := d.Lookup(e.Kind(), e.Name())
		if err != nil {
			el.Add(err)
			continue
		}
		if canonical.Name() != e.Name() {
			el.Add(fmt.Errorf("%s: canonical name is %q", RefOf(e), canonical.Name()))
		}
	}
	return el.Err()
}

func (d *Dictionary) Familiar(name string) (Familiar, error) {
	e, err := d.Lookup(KindFamiliar, name)
	if err != nil {
		return "", err
	}
	return e.(Familiar), nil
}

func (d *Dictionary) Item(name string) (Item, error) {
	e, err := d.Lookup(KindItem, name)
	if err != nil {
		return "", err
	}
	return e.(Item), nil
}

func (d *Dictionary) Skill(name string) (Skill, error) {
	e, err := d.Lookup(KindSkill, name)
	if err != nil {
		return "", err
	}
	return e.(Skill), nil
}

func (d *Dictionary) Effect(name string) (Effect, error) {
	e, err := d.Lookup(KindEffect, name)
	if err != nil {
		return "", err
	}
	return e.(Effect), nil
}

func (d *Dictionary) Path(name string) (Path, error) {
	e, err := d.Lookup(KindPath, name)
	if err != nil {
		return "", err
	}
	return e.(Path), nil
}

func (d *Dictionary) Monster(name string) (Monster, error) {
	e, err := d.Lookup(KindMonster, name)
	if err != nil {
		return "", err
	}
	return e.(Monster), nil
}

// IsSong reports whether the effect occupies a song slot.
func (d *Dictionary) IsSong(e Effect) bool {
	if d.Effects == nil {
		return false
	}
	for _, spec := range d.Effects.GetAll() {
		if strings.EqualFold(spec.Name, e.Name()) {
			return spec.Song
		}
	}
	return false
}
