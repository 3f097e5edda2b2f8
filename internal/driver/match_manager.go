package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-mafia/internal/event"
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/storage"
)

var ErrMatchNotFound = errors.New("match not found")

// match owns one game. Its mutex serialises every dispatch into the game.
type match struct {
	mu        sync.Mutex
	game      *game.Game
	started   bool
	phaseEnds time.Time
}

// MatchManager runs many independent games. Each tick it starts queued games
// and advances every game whose current phase has run out.
type MatchManager struct {
	mu      sync.RWMutex
	matches map[string]*match

	broadcaster *event.Broadcaster
	records     storage.Storer[*game.Record]
	sink        game.ChatSink
	now         func() time.Time
	rng         *rand.Rand
}

func NewMatchManager(ctx context.Context, opts ...MatchManagerOpt) *MatchManager {
	m := &MatchManager{
		matches: map[string]*match{},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.broadcaster == nil {
		m.broadcaster = event.DefaultBroadcaster(ctx)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return m
}

// Queue creates a game that starts on the next tick and returns its id.
func (m *MatchManager) Queue(ctx context.Context, names []string, settings game.Settings) (string, error) {
	id := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := game.New(id, names, settings, m.sink, m.rng)
	if err != nil {
		return "", fmt.Errorf("creating game: %w", err)
	}
	m.matches[id] = &match{game: g}

	slog.InfoContext(ctx, "queued game", "game", id, "players", len(names))
	return id, nil
}

// Resume loads every stored game. Each resumed game gets a fresh timer for
// the phase it was saved in.
func (m *MatchManager) Resume(ctx context.Context) error {
	if m.records == nil {
		return nil
	}

	now := m.now()
	for id, rec := range m.records.GetAll() {
		g, err := game.Restore(rec, m.sink)
		if err != nil {
			return fmt.Errorf("restoring game %s: %w", id, err)
		}

		m.mu.Lock()
		m.matches[id] = &match{
			game:      g,
			started:   true,
			phaseEnds: now.Add(g.Settings().PhaseTimes.For(g.Phase())),
		}
		m.mu.Unlock()

		slog.InfoContext(ctx, "resumed game", "game", id, "phase", g.Phase(), "day", g.DayNumber())
	}

	return nil
}

func (m *MatchManager) Tick(ctx context.Context) error {
	m.mu.RLock()
	ids := make([]string, 0, len(m.matches))
	matches := make([]*match, 0, len(m.matches))
	for id, mt := range m.matches {
		ids = append(ids, id)
		matches = append(matches, mt)
	}
	m.mu.RUnlock()

	now := m.now()
	finished := make([]bool, len(matches))

	var wg sync.WaitGroup
	for i, mt := range matches {
		wg.Go(func() {
			finished[i] = m.tickMatch(ctx, mt, now)
		})
	}
	wg.Wait()

	for i, done := range finished {
		if done {
			m.remove(ctx, ids[i])
		}
	}

	return nil
}

// tickMatch starts or advances one game and reports whether it is over.
func (m *MatchManager) tickMatch(ctx context.Context, mt *match, now time.Time) bool {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	g := mt.game

	switch {
	case !mt.started:
		m.broadcaster.OnGameStart(ctx, g)
		event.OnPhaseStart(ctx, g)
		mt.started = true
	case !now.Before(mt.phaseEnds):
		g.SetPhase(g.Phase().Next())
		event.OnPhaseStart(ctx, g)
	default:
		return false
	}

	mt.phaseEnds = now.Add(g.Settings().PhaseTimes.For(g.Phase()))
	m.save(ctx, g)

	return g.LivingPlayers() == 0
}

func (m *MatchManager) save(ctx context.Context, g *game.Game) {
	if m.records == nil {
		return
	}
	if err := m.records.Save(g.ID(), g.Snapshot()); err != nil {
		slog.ErrorContext(ctx, "saving game", "game", g.ID(), "error", err)
	}
}

func (m *MatchManager) remove(ctx context.Context, id string) {
	m.mu.Lock()
	delete(m.matches, id)
	m.mu.Unlock()

	if m.records != nil {
		if err := m.records.Delete(id); err != nil {
			slog.ErrorContext(ctx, "deleting game", "game", id, "error", err)
		}
	}

	slog.InfoContext(ctx, "game over", "game", id)
}

// View runs fn with exclusive access to the game.
func (m *MatchManager) View(id string, fn func(*game.Game)) error {
	m.mu.RLock()
	mt, ok := m.matches[id]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%s: %w", id, ErrMatchNotFound)
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()

	fn(mt.game)
	return nil
}

// IDs returns the ids of every running or queued game, sorted.
func (m *MatchManager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.matches))
	for id := range m.matches {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
