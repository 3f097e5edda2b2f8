package chat

import (
	"github.com/pixil98/go-mafia/internal/phase"
	"github.com/pixil98/go-mafia/internal/role"
)

// Kind names a chat message variant on the wire.
type Kind string

const (
	KindRoleAssignment        Kind = "role_assignment"
	KindPhaseChange           Kind = "phase_change"
	KindWildcardConvertFailed Kind = "wildcard_convert_failed"
	KindFactionRoster         Kind = "faction_roster"
	KindVigilanteSuicide      Kind = "vigilante_suicide"
	KindMarionettesRemaining  Kind = "marionettes_remaining"
)

// Message is one chat message variant.
type Message interface {
	Kind() Kind
}

// RoleAssignment tells a player which role they now hold.
type RoleAssignment struct {
	Role role.Role `json:"role"`
}

func (RoleAssignment) Kind() Kind { return KindRoleAssignment }

// PhaseChange announces the start of a phase.
type PhaseChange struct {
	Phase     phase.Type `json:"phase"`
	DayNumber uint8      `json:"day_number"`
}

func (PhaseChange) Kind() Kind { return KindPhaseChange }

// WildcardConvertFailed tells a wildcard its chosen role is not allowed in this game.
type WildcardConvertFailed struct {
	Role role.Role `json:"role"`
}

func (WildcardConvertFailed) Kind() Kind { return KindWildcardConvertFailed }

// FactionRoster lists the other members of the recipient's faction.
type FactionRoster struct {
	Faction role.Faction `json:"faction"`
	Members []string     `json:"members"`
}

func (FactionRoster) Kind() Kind { return KindFactionRoster }

type VigilanteSuicide struct{}

func (VigilanteSuicide) Kind() Kind { return KindVigilanteSuicide }

// MarionettesRemaining reports how many more players a puppeteer may string up.
type MarionettesRemaining struct {
	Count uint8 `json:"count"`
}

func (MarionettesRemaining) Kind() Kind { return KindMarionettesRemaining }

// newMessage returns a zero value pointer for kind, used when decoding.
func newMessage(k Kind) (Message, bool) {
	switch k {
	case KindRoleAssignment:
		return &RoleAssignment{}, true
	case KindPhaseChange:
		return &PhaseChange{}, true
	case KindWildcardConvertFailed:
		return &WildcardConvertFailed{}, true
	case KindFactionRoster:
		return &FactionRoster{}, true
	case KindVigilanteSuicide:
		return &VigilanteSuicide{}, true
	case KindMarionettesRemaining:
		return &MarionettesRemaining{}, true
	default:
		return nil, false
	}
}
