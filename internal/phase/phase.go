package phase

import (
	"fmt"
	"time"
)

// Type is a stage of the day/night cycle.
type Type uint8

const (
	Briefing Type = iota
	Night
	Morning
	Discussion
	Voting
	Testimony
	Judgement
	Evening
)

var typeNames = map[Type]string{
	Briefing:   "briefing",
	Night:      "night",
	Morning:    "morning",
	Discussion: "discussion",
	Voting:     "voting",
	Testimony:  "testimony",
	Judgement:  "judgement",
	Evening:    "evening",
}

// Next returns the phase that follows t when nobody is put on trial.
// Testimony is only entered by the trial layer; from there the cycle
// runs through Judgement and Evening back to Night.
func (t Type) Next() Type {
	switch t {
	case Briefing:
		return Night
	case Night:
		return Morning
	case Morning:
		return Discussion
	case Discussion:
		return Voting
	case Voting:
		return Night
	case Testimony:
		return Judgement
	case Judgement:
		return Evening
	case Evening:
		return Night
	default:
		return Night
	}
}

// IsDay reports whether t is part of the day cycle.
func (t Type) IsDay() bool {
	return t != Night && t != Briefing
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("phase(%d)", uint8(t))
}

func (t Type) MarshalText() ([]byte, error) {
	n, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown phase: %d", t)
	}
	return []byte(n), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for k, v := range typeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown phase: %s", text)
}

// Times holds the length of each phase in seconds.
type Times struct {
	Briefing   uint16 `json:"briefing"`
	Morning    uint16 `json:"morning"`
	Discussion uint16 `json:"discussion"`
	Voting     uint16 `json:"voting"`
	Testimony  uint16 `json:"testimony"`
	Judgement  uint16 `json:"judgement"`
	Evening    uint16 `json:"evening"`
	Night      uint16 `json:"night"`
}

// DefaultTimes returns the standard phase lengths.
func DefaultTimes() Times {
	return Times{
		Briefing:   20,
		Morning:    5,
		Discussion: 45,
		Voting:     30,
		Testimony:  20,
		Judgement:  20,
		Evening:    7,
		Night:      37,
	}
}

// For returns how long phase t lasts.
func (pt Times) For(t Type) time.Duration {
	var secs uint16
	switch t {
	case Briefing:
		secs = pt.Briefing
	case Night:
		secs = pt.Night
	case Morning:
		secs = pt.Morning
	case Discussion:
		secs = pt.Discussion
	case Voting:
		secs = pt.Voting
	case Testimony:
		secs = pt.Testimony
	case Judgement:
		secs = pt.Judgement
	case Evening:
		secs = pt.Evening
	}
	return time.Duration(secs) * time.Second
}

// Validate checks that every phase has a length.
func (pt Times) Validate() error {
	for t := range typeNames {
		if pt.For(t) == 0 {
			return fmt.Errorf("phase %s must last at least 1 second", t)
		}
	}
	return nil
}
