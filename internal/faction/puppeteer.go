package faction

import (
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/role"
)

const PuppeteerMarionetteKey = "puppeteer_marionette"

// PuppeteerMarionetteState tracks the puppeteers and the players they have
// turned. Marionettes start empty.
type PuppeteerMarionetteState struct {
	Puppeteers  []int `json:"puppeteers"`
	Marionettes []int `json:"marionettes"`
}

// PuppeteerMarionette sets up the fiends faction when the game starts.
type PuppeteerMarionette struct{}

func (PuppeteerMarionette) Key() string { return PuppeteerMarionetteKey }

func (PuppeteerMarionette) OnGameStart(g *game.Game) {
	var puppeteers []game.PlayerRef
	for _, ref := range g.Players() {
		if g.RoleState(ref).Role() == role.Puppeteer {
			puppeteers = append(puppeteers, ref)
		}
	}

	introduce(g, role.FactionFiends, puppeteers)
	store(g, PuppeteerMarionetteKey, PuppeteerMarionetteState{
		Puppeteers:  indices(puppeteers),
		Marionettes: []int{},
	})
}

// LoadPuppeteerMarionette returns the state recorded at game start.
func LoadPuppeteerMarionette(g *game.Game) (PuppeteerMarionetteState, bool, error) {
	return load[PuppeteerMarionetteState](g, PuppeteerMarionetteKey)
}
