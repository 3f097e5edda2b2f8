package storage

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ExtensionState holds JSON state owned by pluggable components, keyed by
// component key.
type ExtensionState map[string]json.RawMessage

// Set stores v under k after marshalling it to JSON.
func (e *ExtensionState) Set(k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", k, err)
	}

	if *e == nil {
		*e = ExtensionState{}
	}
	(*e)[k] = json.RawMessage(b)
	return nil
}

// Get unmarshals the value at k into out. It returns false, nil when k is absent.
func (e ExtensionState) Get(k string, out any) (bool, error) {
	raw, ok := e[k]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", k, err)
	}
	return true, nil
}

func (e ExtensionState) Delete(k string) {
	delete(e, k)
}

// Clone returns a deep copy. A nil state clones to an empty one.
func (e ExtensionState) Clone() ExtensionState {
	out := make(ExtensionState, len(e))
	for k, v := range e {
		out[k] = slices.Clone(v)
	}
	return out
}
