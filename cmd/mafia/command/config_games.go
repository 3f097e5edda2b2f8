package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/storage"
)

// GameConfig is a game to host at startup.
type GameConfig struct {
	Preset  storage.Ref[*game.Settings] `json:"preset"`
	Players []string                    `json:"players"`
}

func (c *GameConfig) validate() error {
	el := errors.NewErrorList()

	el.Add(c.Preset.Validate())

	if len(c.Players) == 0 {
		el.Add(fmt.Errorf("players must not be empty"))
	}
	seen := map[string]bool{}
	for i, p := range c.Players {
		if p == "" {
			el.Add(fmt.Errorf("player %d: name is required", i))
			continue
		}
		if seen[p] {
			el.Add(fmt.Errorf("player %d: duplicate name %q", i, p))
		}
		seen[p] = true
	}

	return el.Err()
}
