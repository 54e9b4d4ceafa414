package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"gopkg.in/yaml.v3"
)

type Storer[T ValidatingSpec] interface {
	Get(Identifier) T
	GetAll() map[Identifier]T
}

// FileStore holds every asset found under a directory of an fs.FS.
// Files may be JSON or YAML and hold a single asset or a list of assets.
type FileStore[T ValidatingSpec] struct {
	fsys    fs.FS
	dir     string
	records map[Identifier]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](fsys fs.FS, dir string) (*FileStore[T], error) {
	s := &FileStore[T]{
		fsys:    fsys,
		dir:     dir,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[Identifier]T{}

	return fs.WalkDir(s.fsys, s.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		decode := decoderFor(path.Ext(p))
		if decode == nil {
			return nil
		}

		assets, err := s.loadFile(p, decode)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path.Base(p), err)
		}

		for _, asset := range assets {
			err = asset.Validate()
			if err != nil {
				return fmt.Errorf("validating %s (%s): %w", path.Base(p), asset.Id(), err)
			}

			// Error if the key is already in use
			_, ok := s.records[asset.Id()]
			if ok {
				return fmt.Errorf("duplicate key detected: %s", asset.Id())
			}

			s.records[asset.Id()] = asset.Spec
		}

		return nil
	})
}

func (s *FileStore[T]) Get(id Identifier) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}

	return val
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

type decodeFunc func([]byte, any) error

func decoderFor(ext string) decodeFunc {
	switch ext {
	case ".json":
		return json.Unmarshal
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return nil
	}
}

// loadFile accepts either a single asset document or a list of them.
func (s *FileStore[T]) loadFile(p string, decode decodeFunc) ([]*Asset[T], error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var list []*Asset[T]
	if err := decode(data, &list); err == nil {
		return list, nil
	}

	asset := &Asset[T]{}
	err = decode(data, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return []*Asset[T]{asset}, nil
}
