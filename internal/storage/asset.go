package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"github.com/pixil98/go-errors"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// CurrentVersion is the asset envelope version written by Save.
const CurrentVersion = 1

type ValidatingSpec interface {
	Validate() error
}

// Asset is the on-disk envelope around a stored spec.
type Asset[T ValidatingSpec] struct {
	Version uint   `json:"version"`
	ID      string `json:"id"`
	Spec    T      `json:"spec"`
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	} else if a.Version > CurrentVersion {
		el.Add(fmt.Errorf("version %d is newer than supported version %d", a.Version, CurrentVersion))
	}

	if a.ID == "" {
		el.Add(fmt.Errorf("id must be set"))
	} else if !ValidID(a.ID) {
		el.Add(fmt.Errorf("id must be alphanumeric"))
	}

	if isNil(a.Spec) {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}

// ValidID reports whether id can name an asset.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Ref names an asset in another store by id. It marshals as the bare id and
// is resolved against a Storer after loading.
type Ref[T ValidatingSpec] struct {
	id  string
	val T
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.id)
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}

func (r Ref[T]) Validate() error {
	if r.id == "" {
		return fmt.Errorf("%s id is required", typeName[T]())
	}
	return nil
}

// Resolve looks the id up in st.
func (r *Ref[T]) Resolve(st Storer[T]) error {
	val, ok := st.Get(r.id)
	if !ok {
		return fmt.Errorf("%s %q not found", typeName[T](), r.id)
	}
	r.val = val
	return nil
}

func (r Ref[T]) ID() string {
	return r.id
}

// Get returns the resolved value, or the zero value before Resolve.
func (r Ref[T]) Get() T {
	return r.val
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
