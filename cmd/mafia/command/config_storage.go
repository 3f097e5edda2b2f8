package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/storage"
)

type StorageConfig struct {
	// Presets are lobby settings games can be hosted from. The directory must exist.
	Presets AssetConfig[*game.Settings] `json:"presets"`
	// Snapshots hold running games. The directory is created if missing.
	Snapshots AssetConfig[*game.Record] `json:"snapshots"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Presets.validate("presets", true))
	el.Add(c.Snapshots.validate("snapshots", false))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) validate(name string, mustExist bool) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	if !mustExist {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}
	return nil
}

func (c *AssetConfig[T]) buildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
