package game

import (
	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/role"
)

type Puppeteer struct {
	MarionettesRemaining uint8 `json:"marionettes_remaining"`
}

func (Puppeteer) Role() role.Role { return role.Puppeteer }

func (p Puppeteer) OnGameStart(g *Game, actor PlayerRef) RoleState {
	g.SendPrivate(actor, chat.MarionettesRemaining{Count: p.MarionettesRemaining})
	return p
}
