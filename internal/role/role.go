package role

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role identifies one of the playable roles. The set is fixed at build time.
type Role uint8

const (
	Apostle Role = iota
	Consigliere
	Consort
	Doctor
	Escort
	Godfather
	Jester
	Mafioso
	Puppeteer
	Sheriff
	Veteran
	Vigilante
	Zealot
	TrueWildcard

	roleCount
)

var roleNames = [roleCount]string{
	Apostle:      "apostle",
	Consigliere:  "consigliere",
	Consort:      "consort",
	Doctor:       "doctor",
	Escort:       "escort",
	Godfather:    "godfather",
	Jester:       "jester",
	Mafioso:      "mafioso",
	Puppeteer:    "puppeteer",
	Sheriff:      "sheriff",
	Veteran:      "veteran",
	Vigilante:    "vigilante",
	Zealot:       "zealot",
	TrueWildcard: "true_wildcard",
}

// All returns every role in declaration order.
func All() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// Valid reports whether r is a declared role.
func (r Role) Valid() bool {
	return r < roleCount
}

// Key returns the stable snake_case identifier used in config and on the wire.
func (r Role) Key() string {
	if !r.Valid() {
		return ""
	}
	return roleNames[r]
}

// String returns the display name, e.g. "True Wildcard".
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return displayName(roleNames[r])
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown role: %d", r)
	}
	return []byte(roleNames[r]), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Parse looks up a role by its snake_case key.
func Parse(key string) (Role, error) {
	for i, name := range roleNames {
		if name == key {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown role: %s", key)
}

var titleCaser = cases.Title(language.English)

func displayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}
