package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
)

// RoleState is a player's role together with that role's mutable fields.
// Implementations are value types; a player holds exactly one at a time.
type RoleState interface {
	Role() role.Role
}

// PhaseStartHandler is implemented by roles that react to the start of a phase.
// The handler receives its own state by value and returns the state the actor
// holds afterwards, which may belong to a different role.
type PhaseStartHandler interface {
	OnPhaseStart(g *Game, actor PlayerRef, p phase.Type) RoleState
}

// GameStartHandler is implemented by roles with setup of their own, run after
// the faction components.
type GameStartHandler interface {
	OnGameStart(g *Game, actor PlayerRef) RoleState
}

// catalog builds each role's state with its declared defaults.
var catalog = map[role.Role]func() RoleState{
	role.Apostle:      func() RoleState { return Apostle{} },
	role.Consigliere:  func() RoleState { return Consigliere{} },
	role.Consort:      func() RoleState { return Consort{} },
	role.Doctor:       func() RoleState { return Doctor{} },
	role.Escort:       func() RoleState { return Escort{} },
	role.Godfather:    func() RoleState { return Godfather{} },
	role.Jester:       func() RoleState { return Jester{} },
	role.Mafioso:      func() RoleState { return Mafioso{} },
	role.Puppeteer:    func() RoleState { return Puppeteer{MarionettesRemaining: 3} },
	role.Sheriff:      func() RoleState { return Sheriff{} },
	role.Veteran:      func() RoleState { return Veteran{AlertsRemaining: 1} },
	role.Vigilante:    func() RoleState { return Vigilante{BulletsRemaining: 1, KilledTownie: false} },
	role.Zealot:       func() RoleState { return Zealot{} },
	role.TrueWildcard: func() RoleState { return TrueWildcard{Target: role.TrueWildcard} },
}

func init() {
	if err := ValidateCatalog(); err != nil {
		panic(fmt.Sprintf("role catalog: %v", err))
	}
}

// ValidateCatalog checks that every role has a default state reporting that role.
func ValidateCatalog() error {
	el := errors.NewErrorList()
	for _, r := range role.All() {
		newState, ok := catalog[r]
		if !ok {
			el.Add(fmt.Errorf("role %s has no default state", r.Key()))
			continue
		}
		if got := newState().Role(); got != r {
			el.Add(fmt.Errorf("default state for %s reports role %s", r.Key(), got.Key()))
		}
	}
	return el.Err()
}

// DefaultState returns a fresh state for r with every field at its default.
func DefaultState(r role.Role) RoleState {
	newState, ok := catalog[r]
	if !ok {
		return nil
	}
	return newState()
}

// OnPhaseStart runs s's phase start handler and returns the resulting state.
// Roles without a handler are returned unchanged.
func OnPhaseStart(s RoleState, g *Game, actor PlayerRef, p phase.Type) RoleState {
	h, ok := s.(PhaseStartHandler)
	if !ok {
		return s
	}
	return h.OnPhaseStart(g, actor, p)
}

// OnGameStart runs s's game start handler and returns the resulting state.
func OnGameStart(s RoleState, g *Game, actor PlayerRef) RoleState {
	h, ok := s.(GameStartHandler)
	if !ok {
		return s
	}
	return h.OnGameStart(g, actor)
}
