package game

import (
	"fmt"
	"math"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/storage"
)

// Record is a point-in-time snapshot of a game, suitable for storage.
type Record struct {
	ID         string                 `json:"id"`
	Phase      phase.Type             `json:"phase"`
	DayNumber  uint8                  `json:"day_number"`
	Settings   Settings               `json:"settings"`
	Players    []PlayerRecord         `json:"players"`
	Components storage.ExtensionState `json:"components,omitempty"`
}

type PlayerRecord struct {
	Name       string          `json:"name"`
	Alive      bool            `json:"alive"`
	Role       StoredRoleState `json:"role"`
	KnownRoles []int           `json:"known_roles,omitempty"`
}

func (r *Record) Validate() error {
	el := errors.NewErrorList()

	if r.ID == "" {
		el.Add(fmt.Errorf("id is required"))
	}
	if len(r.Players) == 0 {
		el.Add(fmt.Errorf("players must not be empty"))
	}
	if len(r.Players) > math.MaxUint8 {
		el.Add(fmt.Errorf("%d players: %w", len(r.Players), ErrTooManyPlayers))
	}
	for i, p := range r.Players {
		if p.Name == "" {
			el.Add(fmt.Errorf("player %d: name is required", i))
		}
		if p.Role.RoleState == nil {
			el.Add(fmt.Errorf("player %d: role is required", i))
		}
		for _, k := range p.KnownRoles {
			if k < 0 || k >= len(r.Players) {
				el.Add(fmt.Errorf("player %d: known role %d: %w", i, k, ErrPlayerNotFound))
			}
		}
	}
	el.Add(r.Settings.Validate())

	return el.Err()
}

// Snapshot captures the game's current state. Chat history is not included.
func (g *Game) Snapshot() *Record {
	rec := &Record{
		ID:         g.id,
		Phase:      g.phase,
		DayNumber:  g.dayNumber,
		Settings:   g.settings,
		Players:    make([]PlayerRecord, len(g.players)),
		Components: g.Components.Clone(),
	}
	for i, p := range g.players {
		pr := PlayerRecord{
			Name:  p.name,
			Alive: p.alive,
			Role:  StoredRoleState{p.roleState},
		}
		for _, k := range g.KnownRoles(PlayerRef(i)) {
			pr.KnownRoles = append(pr.KnownRoles, k.Index())
		}
		rec.Players[i] = pr
	}
	return rec
}

// Restore rebuilds a game from a snapshot.
func Restore(rec *Record, sink ChatSink) (*Game, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("validating record %s: %w", rec.ID, err)
	}

	g := &Game{
		id:         rec.ID,
		settings:   rec.Settings,
		players:    make([]*player, len(rec.Players)),
		phase:      rec.Phase,
		dayNumber:  rec.DayNumber,
		sink:       sink,
		Components: rec.Components.Clone(),
	}
	for i, pr := range rec.Players {
		p := newPlayer(PlayerRef(i), pr.Name, pr.Role.RoleState)
		p.alive = pr.Alive
		for _, k := range pr.KnownRoles {
			p.knownRoles[PlayerRef(k)] = struct{}{}
		}
		g.players[i] = p
	}

	return g, nil
}
