package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-mafia/internal/role"
	"github.com/pixil98/go-testutil"
)

func TestGenerateRoles(t *testing.T) {
	tests := map[string]struct {
		entries []RoleListEntry
		enabled []role.Role
		exp     []role.Role
		expErr  bool
	}{
		"exact roles in entry order": {
			entries: []RoleListEntry{ExactRole(role.Sheriff), ExactRole(role.Doctor)},
			enabled: []role.Role{role.Doctor, role.Sheriff},
			exp:     []role.Role{role.Sheriff, role.Doctor},
		},
		"faction entry with a single eligible role": {
			entries: []RoleListEntry{RandomInFaction(role.FactionMafia)},
			enabled: []role.Role{role.Godfather, role.Doctor},
			exp:     []role.Role{role.Godfather},
		},
		"capped role is not repeated by random entries": {
			entries: []RoleListEntry{ExactRole(role.Godfather), RandomInFaction(role.FactionMafia)},
			enabled: []role.Role{role.Godfather, role.Consort},
			exp:     []role.Role{role.Godfather, role.Consort},
		},
		"exact entry claims the capped role first": {
			entries: []RoleListEntry{RandomInFaction(role.FactionMafia), ExactRole(role.Godfather)},
			enabled: []role.Role{role.Godfather, role.Consort},
			exp:     []role.Role{role.Consort, role.Godfather},
		},
		"uncapped role may repeat": {
			entries: []RoleListEntry{AnyRole(), AnyRole(), AnyRole()},
			enabled: []role.Role{role.Doctor},
			exp:     []role.Role{role.Doctor, role.Doctor, role.Doctor},
		},
		"exact role not enabled": {
			entries: []RoleListEntry{ExactRole(role.Doctor)},
			enabled: []role.Role{role.Sheriff},
			expErr:  true,
		},
		"exact capped role twice": {
			entries: []RoleListEntry{ExactRole(role.Veteran), ExactRole(role.Veteran)},
			enabled: []role.Role{role.Veteran},
			expErr:  true,
		},
		"faction with nothing enabled": {
			entries: []RoleListEntry{RandomInFaction(role.FactionCult)},
			enabled: []role.Role{role.Doctor},
			expErr:  true,
		},
		"capped role exhausted": {
			entries: []RoleListEntry{AnyRole(), AnyRole()},
			enabled: []role.Role{role.Mafioso},
			expErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := GenerateRoles(tt.entries, tt.enabled, testRand())
			if tt.expErr {
				if !errors.Is(err, ErrRoleListUnsatisfiable) {
					t.Fatalf("expected ErrRoleListUnsatisfiable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "roles", got, tt.exp)
		})
	}
}

func TestGenerateRoles_RespectsEligibility(t *testing.T) {
	enabled := []role.Role{role.Doctor, role.Sheriff, role.Godfather, role.Jester}
	entries := []RoleListEntry{AnyRole(), AnyRole(), AnyRole(), AnyRole(), AnyRole(), AnyRole()}

	for seed := range uint64(20) {
		got, err := GenerateRoles(entries, enabled, newSeededRand(seed))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		godfathers := 0
		for _, r := range got {
			if !CanGenerate(r, enabled, nil) {
				t.Errorf("seed %d: generated %s which is not enabled", seed, r)
			}
			if r == role.Godfather {
				godfathers++
			}
		}
		if godfathers > 1 {
			t.Errorf("seed %d: generated %d godfathers", seed, godfathers)
		}
	}
}
