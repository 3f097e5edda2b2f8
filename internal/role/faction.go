package role

import "fmt"

// Faction groups roles that share a win condition.
type Faction uint8

const (
	FactionTown Faction = iota
	FactionMafia
	FactionCult
	FactionFiends
	FactionNeutral
)

var factionNames = map[Faction]string{
	FactionTown:    "town",
	FactionMafia:   "mafia",
	FactionCult:    "cult",
	FactionFiends:  "fiends",
	FactionNeutral: "neutral",
}

func (f Faction) String() string {
	return displayName(factionNames[f])
}

func (f Faction) MarshalText() ([]byte, error) {
	name, ok := factionNames[f]
	if !ok {
		return nil, fmt.Errorf("unknown faction: %d", f)
	}
	return []byte(name), nil
}

func (f *Faction) UnmarshalText(text []byte) error {
	for k, v := range factionNames {
		if v == string(text) {
			*f = k
			return nil
		}
	}
	return fmt.Errorf("unknown faction: %s", text)
}
