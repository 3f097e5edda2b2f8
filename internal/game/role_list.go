package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/pixil98/go-mafia/internal/role"
)

// CanGenerate reports whether r is allowed in a game with the given enabled
// roles, ignoring any role in excluded.
func CanGenerate(r role.Role, enabled []role.Role, excluded []role.Role) bool {
	return slices.Contains(enabled, r) && !slices.Contains(excluded, r)
}

// GenerateRoles picks one role per entry. Exact entries are placed first so
// random entries cannot use up a capped role an exact entry asks for. The
// result is in entry order.
func GenerateRoles(entries []RoleListEntry, enabled []role.Role, rng *rand.Rand) ([]role.Role, error) {
	out := make([]role.Role, len(entries))
	counts := map[role.Role]uint8{}

	underCap := func(r role.Role) bool {
		maxCount, capped := r.MaxCount()
		return !capped || counts[r] < maxCount
	}

	for i, e := range entries {
		if e.Role == nil {
			continue
		}
		r := *e.Role
		if !CanGenerate(r, enabled, nil) || !underCap(r) {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e, ErrRoleListUnsatisfiable)
		}
		out[i] = r
		counts[r]++
	}

	for i, e := range entries {
		if e.Role != nil {
			continue
		}

		var options []role.Role
		for _, r := range e.candidates() {
			if CanGenerate(r, enabled, nil) && underCap(r) {
				options = append(options, r)
			}
		}
		if len(options) == 0 {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e, ErrRoleListUnsatisfiable)
		}

		r := options[rng.IntN(len(options))]
		out[i] = r
		counts[r]++
	}

	return out, nil
}
