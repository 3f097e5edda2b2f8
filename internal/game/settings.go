package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
)

// Settings is the lobby configuration a game is created from.
type Settings struct {
	RoleList     []RoleListEntry `json:"role_list"`
	EnabledRoles []role.Role     `json:"enabled_roles"`
	PhaseTimes   phase.Times     `json:"phase_times"`
}

func (s *Settings) Validate() error {
	el := errors.NewErrorList()

	if len(s.RoleList) == 0 {
		el.Add(fmt.Errorf("role_list must not be empty"))
	}
	for i, e := range s.RoleList {
		if err := e.Validate(); err != nil {
			el.Add(fmt.Errorf("role_list %d: %w", i, err))
		}
	}

	if len(s.EnabledRoles) == 0 {
		el.Add(fmt.Errorf("enabled_roles must not be empty"))
	}
	for _, r := range s.EnabledRoles {
		if !r.Valid() {
			el.Add(fmt.Errorf("enabled_roles: unknown role %d", r))
		}
	}

	el.Add(s.PhaseTimes.Validate())

	return el.Err()
}

// RoleListEntry picks one role for one player. Exactly one of its fields is set.
type RoleListEntry struct {
	Role    *role.Role    `json:"role,omitempty"`
	Faction *role.Faction `json:"faction,omitempty"`
	Any     bool          `json:"any,omitempty"`
}

// ExactRole is an entry that always produces r.
func ExactRole(r role.Role) RoleListEntry {
	return RoleListEntry{Role: &r}
}

// RandomInFaction is an entry that produces any enabled role of f.
func RandomInFaction(f role.Faction) RoleListEntry {
	return RoleListEntry{Faction: &f}
}

// AnyRole is an entry that produces any enabled role.
func AnyRole() RoleListEntry {
	return RoleListEntry{Any: true}
}

func (e RoleListEntry) Validate() error {
	set := 0
	if e.Role != nil {
		set++
		if !e.Role.Valid() {
			return fmt.Errorf("unknown role %d", *e.Role)
		}
	}
	if e.Faction != nil {
		set++
	}
	if e.Any {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of role, faction or any must be set")
	}
	return nil
}

// candidates returns the roles the entry may produce, before eligibility filtering.
func (e RoleListEntry) candidates() []role.Role {
	switch {
	case e.Role != nil:
		return []role.Role{*e.Role}
	case e.Faction != nil:
		return role.InFaction(*e.Faction)
	default:
		return role.All()
	}
}

func (e RoleListEntry) String() string {
	switch {
	case e.Role != nil:
		return e.Role.String()
	case e.Faction != nil:
		return "random " + e.Faction.String()
	default:
		return "any"
	}
}
