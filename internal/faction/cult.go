package faction

import (
	"slices"

	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/role"
)

const CultKey = "cult"

// Cult introduces the cult to each other when the game starts. The apostle
// leads the roster.
type Cult struct{}

func (Cult) Key() string { return CultKey }

func (Cult) OnGameStart(g *game.Game) {
	members := g.PlayersInFaction(role.FactionCult)
	slices.SortStableFunc(members, func(a, b game.PlayerRef) int {
		return apostleRank(g, a) - apostleRank(g, b)
	})

	introduce(g, role.FactionCult, members)
	store(g, CultKey, Roster{Members: indices(members)})
}

func apostleRank(g *game.Game, ref game.PlayerRef) int {
	if g.RoleState(ref).Role() == role.Apostle {
		return 0
	}
	return 1
}

// LoadCult returns the roster recorded at game start, apostle first.
func LoadCult(g *game.Game) (Roster, bool, error) {
	return load[Roster](g, CultKey)
}
