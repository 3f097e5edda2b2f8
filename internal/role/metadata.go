package role

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Metadata is the static, per-role information shared by every instance of a role.
type Metadata struct {
	Faction Faction
	Defense uint8
	// MaxCount caps how many players may hold the role at once. Zero means unlimited.
	MaxCount uint8
}

var metadata = map[Role]Metadata{
	Apostle:      {Faction: FactionCult, MaxCount: 1},
	Consigliere:  {Faction: FactionMafia},
	Consort:      {Faction: FactionMafia},
	Doctor:       {Faction: FactionTown},
	Escort:       {Faction: FactionTown},
	Godfather:    {Faction: FactionMafia, Defense: 1, MaxCount: 1},
	Jester:       {Faction: FactionNeutral},
	Mafioso:      {Faction: FactionMafia, MaxCount: 1},
	Puppeteer:    {Faction: FactionFiends, Defense: 1, MaxCount: 1},
	Sheriff:      {Faction: FactionTown},
	Veteran:      {Faction: FactionTown, MaxCount: 1},
	Vigilante:    {Faction: FactionTown},
	Zealot:       {Faction: FactionCult},
	TrueWildcard: {Faction: FactionNeutral},
}

func init() {
	if err := validateMetadata(); err != nil {
		panic(fmt.Sprintf("role metadata: %v", err))
	}
}

func validateMetadata() error {
	el := errors.NewErrorList()
	for _, r := range All() {
		if _, ok := metadata[r]; !ok {
			el.Add(fmt.Errorf("role %s has no metadata", r.Key()))
		}
	}
	return el.Err()
}

// Metadata returns the static metadata for r.
func (r Role) Metadata() Metadata {
	return metadata[r]
}

func (r Role) Faction() Faction {
	return metadata[r].Faction
}

func (r Role) Defense() uint8 {
	return metadata[r].Defense
}

// MaxCount returns the cap on simultaneous instances, if the role has one.
func (r Role) MaxCount() (uint8, bool) {
	m := metadata[r].MaxCount
	return m, m > 0
}

// InFaction returns every role belonging to f in declaration order.
func InFaction(f Faction) []Role {
	var roles []Role
	for _, r := range All() {
		if r.Faction() == f {
			roles = append(roles, r)
		}
	}
	return roles
}
