package game

import "github.com/pixil98/go-mafia/internal/role"

// Roles without mutable fields or handlers of their own.

type Apostle struct{}

func (Apostle) Role() role.Role { return role.Apostle }

type Consigliere struct{}

func (Consigliere) Role() role.Role { return role.Consigliere }

type Consort struct{}

func (Consort) Role() role.Role { return role.Consort }

type Doctor struct{}

func (Doctor) Role() role.Role { return role.Doctor }

type Escort struct{}

func (Escort) Role() role.Role { return role.Escort }

type Godfather struct{}

func (Godfather) Role() role.Role { return role.Godfather }

type Jester struct{}

func (Jester) Role() role.Role { return role.Jester }

type Mafioso struct{}

func (Mafioso) Role() role.Role { return role.Mafioso }

type Sheriff struct{}

func (Sheriff) Role() role.Role { return role.Sheriff }

type Zealot struct{}

func (Zealot) Role() role.Role { return role.Zealot }

// Veteran can go on alert a limited number of nights.
type Veteran struct {
	AlertsRemaining uint8 `json:"alerts_remaining"`
}

func (Veteran) Role() role.Role { return role.Veteran }
