package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/resources/bandersnatch"
	"github.com/pixil98/go-libram/internal/resources/stompingboots"
	"github.com/pixil98/go-libram/internal/resources/terminal"
)

// AssetsConfig optionally points at a directory of catalogs laid out like
// the bundled ones. Without a path the bundled catalogs are used.
type AssetsConfig struct {
	Path string `json:"path,omitempty"`
}

func (c *AssetsConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("assets: invalid path %q: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("assets: %q is not a directory", c.Path)
	}
	return nil
}

// BuildDictionary loads the catalogs and checks that every entity the
// resources use is present.
func (c *AssetsConfig) BuildDictionary() (*game.Dictionary, error) {
	var dict *game.Dictionary
	var err error
	if c.Path == "" {
		dict, err = game.DefaultDictionary()
	} else {
		dict, err = game.LoadDictionary(os.DirFS(c.Path), ".")
	}
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}

	el := errors.NewErrorList()
	el.Add(bandersnatch.Validate(dict))
	el.Add(stompingboots.Validate(dict))
	el.Add(terminal.Validate(dict))
	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("validating resources: %w", err)
	}

	return dict, nil
}
