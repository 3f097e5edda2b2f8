package driver

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
	"github.com/pixil98/go-mafia/internal/storage"
	"github.com/pixil98/go-testutil"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func exactSettings(roles ...role.Role) game.Settings {
	s := game.Settings{EnabledRoles: roles, PhaseTimes: phase.DefaultTimes()}
	for _, r := range roles {
		s.RoleList = append(s.RoleList, game.ExactRole(r))
	}
	return s
}

func newManager(t *testing.T, clock *fakeClock, opts ...MatchManagerOpt) *MatchManager {
	t.Helper()

	opts = append([]MatchManagerOpt{
		WithClock(clock.Now),
		WithRand(rand.New(rand.NewPCG(7, 8))),
	}, opts...)
	return NewMatchManager(context.Background(), opts...)
}

func tick(t *testing.T, m *MatchManager) {
	t.Helper()

	if err := m.Tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
}

func currentPhase(t *testing.T, m *MatchManager, id string) (phase.Type, uint8) {
	t.Helper()

	var p phase.Type
	var day uint8
	err := m.View(id, func(g *game.Game) {
		p = g.Phase()
		day = g.DayNumber()
	})
	if err != nil {
		t.Fatalf("viewing: %v", err)
	}
	return p, day
}

func TestMatchManager_Queue(t *testing.T) {
	tests := map[string]struct {
		names    []string
		settings game.Settings
		expErr   bool
	}{
		"valid": {
			names:    []string{"Alice", "Bob"},
			settings: exactSettings(role.Doctor, role.Sheriff),
		},
		"player count mismatch": {
			names:    []string{"Alice"},
			settings: exactSettings(role.Doctor, role.Sheriff),
			expErr:   true,
		},
		"invalid settings": {
			names:    []string{"Alice"},
			settings: game.Settings{},
			expErr:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newManager(t, newFakeClock())

			id, err := m.Queue(context.Background(), tt.names, tt.settings)
			if tt.expErr {
				testutil.AssertErrorContains(t, err, "creating game")
				testutil.AssertEqual(t, "ids", len(m.IDs()), 0)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "valid id", storage.ValidID(id), true)
			testutil.AssertEqual(t, "ids", m.IDs(), []string{id})
		})
	}
}

func TestMatchManager_PhaseProgression(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	id, err := m.Queue(context.Background(), []string{"Alice", "Bob"}, exactSettings(role.Doctor, role.Sheriff))
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}

	tick(t, m)

	err = m.View(id, func(g *game.Game) {
		for _, ref := range g.Players() {
			testutil.AssertEqual(t, "start messages", len(g.PrivateMessages(ref)), 1)
		}
	})
	if err != nil {
		t.Fatalf("viewing: %v", err)
	}

	times := phase.DefaultTimes()
	steps := []struct {
		advance time.Duration
		exp     phase.Type
		expDay  uint8
	}{
		{0, phase.Briefing, 1},
		{times.For(phase.Briefing) - time.Second, phase.Briefing, 1},
		{time.Second, phase.Night, 1},
		{times.For(phase.Night), phase.Morning, 2},
		{times.For(phase.Morning), phase.Discussion, 2},
		{times.For(phase.Discussion), phase.Voting, 2},
		{times.For(phase.Voting), phase.Night, 2},
	}

	for _, s := range steps {
		clock.Advance(s.advance)
		tick(t, m)

		p, day := currentPhase(t, m, id)
		testutil.AssertEqual(t, "phase", p, s.exp)
		testutil.AssertEqual(t, "day", day, s.expDay)
	}
}

func TestMatchManager_WildcardBecomesRoleAtNight(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	id, err := m.Queue(context.Background(), []string{"Alice", "Bob"}, game.Settings{
		RoleList:     []game.RoleListEntry{game.ExactRole(role.TrueWildcard), game.ExactRole(role.Sheriff)},
		EnabledRoles: []role.Role{role.TrueWildcard, role.Sheriff, role.Doctor},
		PhaseTimes:   phase.DefaultTimes(),
	})
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}

	tick(t, m)

	var wild game.PlayerRef
	err = m.View(id, func(g *game.Game) {
		for _, ref := range g.Players() {
			if g.RoleState(ref).Role() == role.TrueWildcard {
				wild = ref
			}
		}
		g.SetRole(wild, game.TrueWildcard{Target: role.Doctor})
	})
	if err != nil {
		t.Fatalf("viewing: %v", err)
	}

	clock.Advance(phase.DefaultTimes().For(phase.Briefing))
	tick(t, m)

	err = m.View(id, func(g *game.Game) {
		testutil.AssertEqual(t, "phase", g.Phase(), phase.Night)
		testutil.AssertEqual(t, "state", g.RoleState(wild), game.DefaultState(role.Doctor))

		msgs := g.PrivateMessages(wild)
		testutil.AssertEqual(t, "last message", msgs[len(msgs)-1], chat.Message(chat.RoleAssignment{Role: role.Doctor}))
	})
	if err != nil {
		t.Fatalf("viewing: %v", err)
	}
}

func TestMatchManager_PersistAndResume(t *testing.T) {
	dir := t.TempDir()
	records, err := storage.NewFileStore[*game.Record](dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	clock := newFakeClock()
	m := newManager(t, clock, WithRecords(records))

	id, err := m.Queue(context.Background(), []string{"Alice", "Bob", "Carol"}, exactSettings(role.Godfather, role.Mafioso, role.Doctor))
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}

	tick(t, m)
	clock.Advance(phase.DefaultTimes().For(phase.Briefing))
	tick(t, m)

	rec, ok := records.Get(id)
	testutil.AssertEqual(t, "saved", ok, true)
	testutil.AssertEqual(t, "saved phase", rec.Phase, phase.Night)

	reloaded, err := storage.NewFileStore[*game.Record](dir)
	if err != nil {
		t.Fatalf("reloading store: %v", err)
	}
	resumed := newManager(t, clock, WithRecords(reloaded))
	if err := resumed.Resume(context.Background()); err != nil {
		t.Fatalf("resuming: %v", err)
	}

	testutil.AssertEqual(t, "ids", resumed.IDs(), []string{id})
	p, day := currentPhase(t, resumed, id)
	testutil.AssertEqual(t, "phase", p, phase.Night)
	testutil.AssertEqual(t, "day", day, uint8(1))

	err = resumed.View(id, func(g *game.Game) {
		for _, ref := range g.Players() {
			if g.RoleState(ref).Role().Faction() != role.FactionMafia {
				continue
			}
			testutil.AssertEqual(t, "mafia sees mafia", len(g.KnownRoles(ref)), 2)
		}
		testutil.AssertEqual(t, "mafia component", len(g.Components["mafia"]) > 0, true)
	})
	if err != nil {
		t.Fatalf("viewing: %v", err)
	}

	clock.Advance(phase.DefaultTimes().For(phase.Night))
	tick(t, resumed)

	p, day = currentPhase(t, resumed, id)
	testutil.AssertEqual(t, "phase after resume", p, phase.Morning)
	testutil.AssertEqual(t, "day after resume", day, uint8(2))
}

func TestMatchManager_RemovesFinishedGames(t *testing.T) {
	records, err := storage.NewFileStore[*game.Record](t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	clock := newFakeClock()
	m := newManager(t, clock, WithRecords(records))

	id, err := m.Queue(context.Background(), []string{"Alice", "Bob"}, exactSettings(role.Doctor, role.Jester))
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}
	tick(t, m)

	err = m.View(id, func(g *game.Game) {
		for _, ref := range g.Players() {
			g.Kill(ref)
		}
	})
	if err != nil {
		t.Fatalf("viewing: %v", err)
	}

	clock.Advance(phase.DefaultTimes().For(phase.Briefing))
	tick(t, m)

	testutil.AssertEqual(t, "ids", len(m.IDs()), 0)
	_, ok := records.Get(id)
	testutil.AssertEqual(t, "record kept", ok, false)

	err = m.View(id, func(*game.Game) {})
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestMatchManager_GamesAreIndependent(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	first, err := m.Queue(context.Background(), []string{"Alice"}, exactSettings(role.Doctor))
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}
	tick(t, m)

	clock.Advance(10 * time.Second)
	second, err := m.Queue(context.Background(), []string{"Bob"}, exactSettings(role.Sheriff))
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}
	tick(t, m)

	clock.Advance(10 * time.Second)
	tick(t, m)

	p, _ := currentPhase(t, m, first)
	testutil.AssertEqual(t, "first", p, phase.Night)
	p, _ = currentPhase(t, m, second)
	testutil.AssertEqual(t, "second", p, phase.Briefing)
}

func TestMatchManager_StartDispatchesOpeningPhase(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	clock := newFakeClock()
	m := newManager(t, clock)

	id, err := m.Queue(context.Background(), []string{"Alice", "Bob"}, exactSettings(role.Doctor, role.Jester))
	if err != nil {
		t.Fatalf("queueing: %v", err)
	}

	tick(t, m)

	p, day := currentPhase(t, m, id)
	testutil.AssertEqual(t, "phase", p, phase.Briefing)
	testutil.AssertEqual(t, "day", day, uint8(1))
	testutil.AssertEqual(t, "phase start dispatched", bytes.Contains(buf.Bytes(), []byte(`msg="phase started" game=`+id)), true)
}
