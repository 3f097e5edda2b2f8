package faction

import (
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/role"
)

const MafiaKey = "mafia"

// Mafia introduces the mafia to each other when the game starts.
type Mafia struct{}

func (Mafia) Key() string { return MafiaKey }

func (Mafia) OnGameStart(g *game.Game) {
	members := g.PlayersInFaction(role.FactionMafia)
	introduce(g, role.FactionMafia, members)
	store(g, MafiaKey, Roster{Members: indices(members)})
}

// LoadMafia returns the roster recorded at game start.
func LoadMafia(g *game.Game) (Roster, bool, error) {
	return load[Roster](g, MafiaKey)
}
