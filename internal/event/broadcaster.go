package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-mafia/internal/faction"
	"github.com/pixil98/go-mafia/internal/game"
)

// Component is game-wide logic that must run once when a game starts.
type Component interface {
	Key() string
	OnGameStart(*game.Game)
}

// Broadcaster runs game start logic. Registered components run first, in
// registration order, then each player's role handler in player order.
type Broadcaster struct {
	components []Component
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{components: []Component{}}
}

// DefaultBroadcaster returns a broadcaster with every faction component registered.
func DefaultBroadcaster(ctx context.Context) *Broadcaster {
	b := NewBroadcaster()
	for _, c := range []Component{faction.Mafia{}, faction.Cult{}, faction.PuppeteerMarionette{}} {
		if err := b.Register(ctx, c); err != nil {
			panic(err)
		}
	}
	return b
}

func (b *Broadcaster) Register(ctx context.Context, c Component) error {
	if c == nil {
		return fmt.Errorf("component is nil")
	}
	for _, existing := range b.components {
		if existing.Key() == c.Key() {
			return fmt.Errorf("component %s already registered", c.Key())
		}
	}

	b.components = append(b.components, c)
	slog.DebugContext(ctx, "registered component", "key", c.Key())

	return nil
}

// Keys returns the registered component keys in run order.
func (b *Broadcaster) Keys() []string {
	keys := make([]string, len(b.components))
	for i, c := range b.components {
		keys[i] = c.Key()
	}
	return keys
}

// OnGameStart runs every component, then every player's game start handler.
func (b *Broadcaster) OnGameStart(ctx context.Context, g *game.Game) {
	for _, c := range b.components {
		c.OnGameStart(g)
	}
	for _, ref := range g.Players() {
		g.DispatchGameStart(ref)
	}

	slog.InfoContext(ctx, "game started", "game", g.ID(), "players", len(g.Players()))
}

// OnPhaseStart tells every player, living or dead, that the game's current
// phase has begun. Handlers decide for themselves whether the dead act.
func OnPhaseStart(ctx context.Context, g *game.Game) {
	p := g.Phase()
	for _, ref := range g.Players() {
		g.DispatchPhaseStart(ref, p)
	}

	slog.DebugContext(ctx, "phase started", "game", g.ID(), "phase", p, "day", g.DayNumber())
}
