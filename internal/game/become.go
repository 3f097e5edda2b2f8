package game

import (
	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/role"
)

// BecomeRole returns the state actor should hold after trying to turn from
// current into target. A target equal to current's own role means nothing was
// chosen and current is returned as is. An eligible target yields its default
// state. An ineligible target leaves current unchanged and tells the actor why.
func BecomeRole(g *Game, actor PlayerRef, current RoleState, target role.Role, excluded []role.Role) RoleState {
	if target == current.Role() {
		return current
	}

	if CanGenerate(target, g.EnabledRoles(), excluded) {
		return DefaultState(target)
	}

	g.SendPrivate(actor, chat.WildcardConvertFailed{Role: target})
	return current
}
