package game

import (
	"fmt"

	"github.com/pixil98/go-mafia/internal/chat"
)

// PlayerRef is a player's stable position in the game's player order.
type PlayerRef uint8

// Index returns the zero-based position of the player.
func (r PlayerRef) Index() int {
	return int(r)
}

func (r PlayerRef) String() string {
	return fmt.Sprintf("%d", r)
}

type player struct {
	name      string
	alive     bool
	roleState RoleState

	// knownRoles are the players whose role this player can see.
	knownRoles map[PlayerRef]struct{}
	messages   []chat.Message
}

func newPlayer(ref PlayerRef, name string, state RoleState) *player {
	return &player{
		name:       name,
		alive:      true,
		roleState:  state,
		knownRoles: map[PlayerRef]struct{}{ref: {}},
	}
}
