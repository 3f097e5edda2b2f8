package faction

import (
	"log/slog"

	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/role"
)

// Roster is the stored membership of a faction, as player indices.
type Roster struct {
	Members []int `json:"members"`
}

// Contains reports whether ref is on the roster.
func (r Roster) Contains(ref game.PlayerRef) bool {
	for _, m := range r.Members {
		if m == ref.Index() {
			return true
		}
	}
	return false
}

// introduce lets every member see every other member's role and sends each
// member who has teammates the names of those teammates.
func introduce(g *game.Game, f role.Faction, members []game.PlayerRef) {
	for _, viewer := range members {
		var names []string
		for _, m := range members {
			if m == viewer {
				continue
			}
			g.RevealRole(viewer, m)
			names = append(names, g.Name(m))
		}
		if len(names) > 0 {
			g.SendPrivate(viewer, chat.FactionRoster{Faction: f, Members: names})
		}
	}
}

func indices(refs []game.PlayerRef) []int {
	out := make([]int, len(refs))
	for i, r := range refs {
		out[i] = r.Index()
	}
	return out
}

func store(g *game.Game, key string, v any) {
	if err := g.Components.Set(key, v); err != nil {
		slog.Error("storing faction state", "game", g.ID(), "component", key, "error", err)
	}
}

func load[T any](g *game.Game, key string) (T, bool, error) {
	var v T
	found, err := g.Components.Get(key, &v)
	return v, found, err
}
