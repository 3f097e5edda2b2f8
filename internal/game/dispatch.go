package game

import (
	"log/slog"

	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/phase"
)

// DispatchPhaseStart runs the actor's phase start handler and installs the
// state it returns.
func (g *Game) DispatchPhaseStart(actor PlayerRef, p phase.Type) {
	current := g.RoleState(actor)
	g.apply(actor, current, OnPhaseStart(current, g, actor, p))
}

// DispatchGameStart tells the actor their role, then runs the role's game
// start handler.
func (g *Game) DispatchGameStart(actor PlayerRef) {
	current := g.RoleState(actor)
	g.SendPrivate(actor, chat.RoleAssignment{Role: current.Role()})
	g.apply(actor, current, OnGameStart(current, g, actor))
}

// apply installs next as the actor's state. A different role is a wholesale
// replacement; the same role is an update of that role's own fields.
func (g *Game) apply(actor PlayerRef, prev, next RoleState) {
	if next == nil {
		slog.Warn("role handler returned no state", "game", g.id, "player", actor, "role", prev.Role().Key())
		return
	}
	if next.Role() != prev.Role() {
		g.SetRole(actor, next)
		return
	}
	g.players[actor].roleState = next
}
