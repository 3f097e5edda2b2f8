package game

import (
	"testing"

	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
	"github.com/pixil98/go-testutil"
)

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range role.All() {
		s := DefaultState(r)
		if s == nil {
			t.Errorf("role %s has no default state", r.Key())
			continue
		}
		testutil.AssertEqual(t, r.Key()+" role", s.Role(), r)
	}
}

func TestDefaultState(t *testing.T) {
	tests := map[string]struct {
		role role.Role
		exp  RoleState
	}{
		"veteran has one alert": {
			role: role.Veteran,
			exp:  Veteran{AlertsRemaining: 1},
		},
		"vigilante has one bullet and no guilt": {
			role: role.Vigilante,
			exp:  Vigilante{BulletsRemaining: 1, KilledTownie: false},
		},
		"true wildcard targets itself": {
			role: role.TrueWildcard,
			exp:  TrueWildcard{Target: role.TrueWildcard},
		},
		"puppeteer has three marionettes": {
			role: role.Puppeteer,
			exp:  Puppeteer{MarionettesRemaining: 3},
		},
		"doctor carries no fields": {
			role: role.Doctor,
			exp:  Doctor{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "state", DefaultState(tt.role), tt.exp)
		})
	}
}

func TestDefaultState_Undeclared(t *testing.T) {
	if s := DefaultState(role.Role(250)); s != nil {
		t.Errorf("expected nil state, got %v", s)
	}
}

func TestOnPhaseStart_NoHandler(t *testing.T) {
	phases := []phase.Type{
		phase.Briefing, phase.Night, phase.Morning, phase.Discussion,
		phase.Voting, phase.Testimony, phase.Judgement, phase.Evening,
	}

	for _, r := range role.All() {
		s := DefaultState(r)
		if _, ok := s.(PhaseStartHandler); ok {
			continue
		}

		t.Run(r.Key(), func(t *testing.T) {
			sink := &recordingSink{}
			g := newTestGame(t, sink, []role.Role{r}, r)
			ref := refWithRole(t, g, r)

			for _, p := range phases {
				got := OnPhaseStart(s, g, ref, p)
				testutil.AssertEqual(t, "state", got, s)

				g.DispatchPhaseStart(ref, p)
				testutil.AssertEqual(t, "dispatched state", g.RoleState(ref), s)
			}

			testutil.AssertEqual(t, "private messages", len(g.PrivateMessages(ref)), 0)
			testutil.AssertEqual(t, "sink messages", len(sink.private), 0)
		})
	}
}

func TestOnGameStart_NoHandler(t *testing.T) {
	s := DefaultState(role.Sheriff)
	g := newTestGame(t, nil, []role.Role{role.Sheriff}, role.Sheriff)

	got := OnGameStart(s, g, 0)

	testutil.AssertEqual(t, "state", got, s)
	testutil.AssertEqual(t, "private messages", len(g.PrivateMessages(0)), 0)
}
