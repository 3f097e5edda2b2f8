package game

import (
	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
)

type Vigilante struct {
	BulletsRemaining uint8 `json:"bullets_remaining"`
	// KilledTownie is set by night resolution when the vigilante shot a town member.
	KilledTownie bool `json:"killed_townie"`
}

func (Vigilante) Role() role.Role { return role.Vigilante }

// OnPhaseStart kills a vigilante who shot a town member, the night after.
func (v Vigilante) OnPhaseStart(g *Game, actor PlayerRef, p phase.Type) RoleState {
	if p != phase.Night || !v.KilledTownie || !g.IsAlive(actor) {
		return v
	}

	g.Kill(actor)
	g.SendPrivate(actor, chat.VigilanteSuicide{})
	v.BulletsRemaining = 0
	return v
}
