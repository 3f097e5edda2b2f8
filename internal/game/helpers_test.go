package game

import (
	"math/rand/v2"
	"testing"

	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
)

// recordingSink is a ChatSink that keeps everything it is handed.
type recordingSink struct {
	private []sentMessage
	public  []chat.Message
}

type sentMessage struct {
	to  PlayerRef
	msg chat.Message
}

func (s *recordingSink) SendPrivate(_ string, to PlayerRef, msg chat.Message) {
	s.private = append(s.private, sentMessage{to: to, msg: msg})
}

func (s *recordingSink) Broadcast(_ string, msg chat.Message) {
	s.public = append(s.public, msg)
}

func testRand() *rand.Rand {
	return newSeededRand(1)
}

func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 2))
}

func exactSettings(enabled []role.Role, roles ...role.Role) Settings {
	s := Settings{
		EnabledRoles: enabled,
		PhaseTimes:   phase.DefaultTimes(),
	}
	for _, r := range roles {
		s.RoleList = append(s.RoleList, ExactRole(r))
	}
	return s
}

// newTestGame builds a game with one player per role. Every role must be in enabled.
func newTestGame(t *testing.T, sink ChatSink, enabled []role.Role, roles ...role.Role) *Game {
	t.Helper()

	names := make([]string, len(roles))
	for i := range roles {
		names[i] = string(rune('A' + i))
	}

	g, err := New("test-game", names, exactSettings(enabled, roles...), sink, testRand())
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	return g
}

// refWithRole finds the first player holding r.
func refWithRole(t *testing.T, g *Game, r role.Role) PlayerRef {
	t.Helper()

	for _, ref := range g.Players() {
		if g.RoleState(ref).Role() == r {
			return ref
		}
	}
	t.Fatalf("no player holds %s", r)
	return 0
}
