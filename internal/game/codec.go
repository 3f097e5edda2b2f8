package game

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pixil98/go-mafia/internal/role"
)

const roleStateTypeKey = "type"

// MarshalRoleState encodes s as a JSON object holding the role under "type"
// alongside the role's own fields.
func MarshalRoleState(s RoleState) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("role state is nil")
	}

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", s.Role().Key(), err)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("role state %s is not an object: %w", s.Role().Key(), err)
	}

	typ, err := json.Marshal(s.Role())
	if err != nil {
		return nil, err
	}
	fields[roleStateTypeKey] = typ

	return json.Marshal(fields)
}

// UnmarshalRoleState decodes a state written by MarshalRoleState. Fields
// missing from b keep their defaults.
func UnmarshalRoleState(b []byte) (RoleState, error) {
	var tag struct {
		Type *role.Role `json:"type"`
	}
	if err := json.Unmarshal(b, &tag); err != nil {
		return nil, fmt.Errorf("reading role type: %w", err)
	}
	if tag.Type == nil {
		return nil, fmt.Errorf("role state has no %q", roleStateTypeKey)
	}

	def := DefaultState(*tag.Type)
	ptr := reflect.New(reflect.TypeOf(def))
	ptr.Elem().Set(reflect.ValueOf(def))

	if err := json.Unmarshal(b, ptr.Interface()); err != nil {
		return nil, fmt.Errorf("unmarshalling %s: %w", tag.Type.Key(), err)
	}

	return ptr.Elem().Interface().(RoleState), nil
}

// StoredRoleState wraps a RoleState so it can sit in JSON documents.
type StoredRoleState struct {
	RoleState
}

func (s StoredRoleState) MarshalJSON() ([]byte, error) {
	return MarshalRoleState(s.RoleState)
}

func (s *StoredRoleState) UnmarshalJSON(b []byte) error {
	rs, err := UnmarshalRoleState(b)
	if err != nil {
		return err
	}
	s.RoleState = rs
	return nil
}
