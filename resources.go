package bento

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Resources is a typed singleton store for world-global data shared by
// systems, such as a frame clock or a random source. At most one resource of
// each type is present at a time.
type Resources struct {
	items map[reflect.Type]any
}

func newResources() *Resources {
	return &Resources{items: make(map[reflect.Type]any)}
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.items)
}

// Clear removes all resources.
func (r *Resources) Clear() {
	clear(r.items)
}

// PutResource stores res as the singleton of type T.
//
// Returns:
//   - ErrDuplicateResource if a resource of type T is already present.
func PutResource[T any](r *Resources, res *T) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := r.items[t]; ok {
		return eris.Wrap(ErrDuplicateResource, t.String())
	}
	r.items[t] = res
	return nil
}

// GetResource retrieves the resource of type T, or nil if absent.
func GetResource[T any](r *Resources) *T {
	res, ok := r.items[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return res.(*T)
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.items[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// RemoveResource removes the resource of type T.
//
// Returns:
//   - ErrMissingResource if no resource of type T is present.
func RemoveResource[T any](r *Resources) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := r.items[t]; !ok {
		return eris.Wrap(ErrMissingResource, t.String())
	}
	delete(r.items, t)
	return nil
}
