package game

import (
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
)

// TrueWildcard becomes Target at the start of each night, once Target is
// a role enabled in the game. Target defaults to TrueWildcard, meaning no
// choice has been made yet.
type TrueWildcard struct {
	Target role.Role `json:"role"`
}

func (TrueWildcard) Role() role.Role { return role.TrueWildcard }

func (w TrueWildcard) OnPhaseStart(g *Game, actor PlayerRef, p phase.Type) RoleState {
	if p != phase.Night {
		return w
	}
	if !g.IsAlive(actor) {
		return w
	}
	return BecomeRole(g, actor, w, w.Target, nil)
}
