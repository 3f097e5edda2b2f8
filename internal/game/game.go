package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
	"github.com/pixil98/go-mafia/internal/storage"
)

// ChatSink delivers chat messages to players outside of the game. Sends are
// fire-and-forget; delivery failures are the sink's concern.
type ChatSink interface {
	SendPrivate(gameID string, to PlayerRef, msg chat.Message)
	Broadcast(gameID string, msg chat.Message)
}

// Game is the authoritative state of one game. It is not safe for concurrent
// use; callers serialise access per game.
type Game struct {
	id        string
	settings  Settings
	players   []*player
	phase     phase.Type
	dayNumber uint8
	sink      ChatSink
	messages  []chat.Message

	// Components holds faction-level state keyed by component.
	Components storage.ExtensionState
}

// New creates a game in the Briefing phase of day 1 with a role generated
// from settings for each named player. Role assignment order is shuffled with
// rng, or with a randomly seeded source when rng is nil.
func New(id string, names []string, settings Settings, sink ChatSink, rng *rand.Rand) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNotEnoughPlayers
	}
	if len(names) > math.MaxUint8 {
		return nil, ErrTooManyPlayers
	}
	if len(names) != len(settings.RoleList) {
		return nil, fmt.Errorf("%d players, %d roles: %w", len(names), len(settings.RoleList), ErrRoleListSize)
	}
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("player %d: name is required", i)
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	roles, err := GenerateRoles(settings.RoleList, settings.EnabledRoles, rng)
	if err != nil {
		return nil, fmt.Errorf("generating roles: %w", err)
	}
	rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	g := &Game{
		id:        id,
		settings:  settings,
		players:   make([]*player, len(names)),
		phase:     phase.Briefing,
		dayNumber: 1,
		sink:      sink,
	}
	for i, n := range names {
		g.players[i] = newPlayer(PlayerRef(i), n, DefaultState(roles[i]))
	}

	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Settings() Settings {
	return g.settings
}

// EnabledRoles returns the roles the game's settings allow.
func (g *Game) EnabledRoles() []role.Role {
	return g.settings.EnabledRoles
}

func (g *Game) Phase() phase.Type {
	return g.phase
}

func (g *Game) DayNumber() uint8 {
	return g.dayNumber
}

// SetPhase moves the game into t and announces it to every player.
// Entering Morning starts a new day.
func (g *Game) SetPhase(t phase.Type) {
	g.phase = t
	if t == phase.Morning {
		g.dayNumber++
	}
	g.Broadcast(chat.PhaseChange{Phase: t, DayNumber: g.dayNumber})
}

// Players returns every player, living or dead, in stable order.
func (g *Game) Players() []PlayerRef {
	refs := make([]PlayerRef, len(g.players))
	for i := range g.players {
		refs[i] = PlayerRef(i)
	}
	return refs
}

// PlayersInFaction returns the players whose current role belongs to f.
func (g *Game) PlayersInFaction(f role.Faction) []PlayerRef {
	var refs []PlayerRef
	for i, p := range g.players {
		if p.roleState.Role().Faction() == f {
			refs = append(refs, PlayerRef(i))
		}
	}
	return refs
}

// Ref validates index and returns its PlayerRef.
func (g *Game) Ref(index int) (PlayerRef, error) {
	if index < 0 || index >= len(g.players) {
		return 0, fmt.Errorf("player %d: %w", index, ErrPlayerNotFound)
	}
	return PlayerRef(index), nil
}

func (g *Game) Name(ref PlayerRef) string {
	return g.players[ref].name
}

func (g *Game) IsAlive(ref PlayerRef) bool {
	return g.players[ref].alive
}

// Kill marks the player dead. Death resolution is handled by the caller.
func (g *Game) Kill(ref PlayerRef) {
	g.players[ref].alive = false
	slog.Debug("player died", "game", g.id, "player", ref)
}

// LivingPlayers returns how many players are alive.
func (g *Game) LivingPlayers() int {
	n := 0
	for _, p := range g.players {
		if p.alive {
			n++
		}
	}
	return n
}

// RoleState returns the player's current role state.
func (g *Game) RoleState(ref PlayerRef) RoleState {
	return g.players[ref].roleState
}

// SetRole replaces the player's role state wholesale. Nothing of the old
// state carries over.
func (g *Game) SetRole(ref PlayerRef, s RoleState) {
	p := g.players[ref]
	old := p.roleState
	p.roleState = s

	slog.Debug("role changed", "game", g.id, "player", ref, "from", old.Role().Key(), "to", s.Role().Key())
	g.SendPrivate(ref, chat.RoleAssignment{Role: s.Role()})
}

// RevealRole lets viewer see target's role.
func (g *Game) RevealRole(viewer, target PlayerRef) {
	g.players[viewer].knownRoles[target] = struct{}{}
}

// KnowsRole reports whether viewer can see target's role.
func (g *Game) KnowsRole(viewer, target PlayerRef) bool {
	_, ok := g.players[viewer].knownRoles[target]
	return ok
}

// KnownRoles returns the players whose role viewer can see, in player order.
func (g *Game) KnownRoles(viewer PlayerRef) []PlayerRef {
	refs := make([]PlayerRef, 0, len(g.players[viewer].knownRoles))
	for r := range g.players[viewer].knownRoles {
		refs = append(refs, r)
	}
	slices.Sort(refs)
	return refs
}

// SendPrivate records msg for the player and hands it to the chat sink.
func (g *Game) SendPrivate(ref PlayerRef, msg chat.Message) {
	p := g.players[ref]
	p.messages = append(p.messages, msg)
	if g.sink != nil {
		g.sink.SendPrivate(g.id, ref, msg)
	}
}

// PrivateMessages returns the messages sent to one player.
func (g *Game) PrivateMessages(ref PlayerRef) []chat.Message {
	return slices.Clone(g.players[ref].messages)
}

// Broadcast records msg for everyone and hands it to the chat sink.
func (g *Game) Broadcast(msg chat.Message) {
	g.messages = append(g.messages, msg)
	if g.sink != nil {
		g.sink.Broadcast(g.id, msg)
	}
}

// PublicMessages returns the messages broadcast to every player.
func (g *Game) PublicMessages() []chat.Message {
	return slices.Clone(g.messages)
}
