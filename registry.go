package bento

import (
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"
)

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered. This value is fixed at 256.
const MaxComponentTypes = 256

// ComponentID is the small integer assigned to a component type at
// registration. IDs are assigned densely starting from 0 and index directly
// into the world's per-type stores and into each slot's offset row.
type ComponentID uint8

// Registry maps each declared component type to its ComponentID. The set of
// declared types is fixed at world construction: NewWorld freezes the
// registry, and later registration fails with ErrRegistryFrozen.
//
// A Registry is not safe for concurrent use; build it up front, then hand it
// to NewWorld.
type Registry struct {
	typeToID map[reflect.Type]ComponentID
	idToType []reflect.Type
	// makeStore holds one constructor per registered type, captured with the
	// concrete type at registration so NewWorld can build typed stores
	// without reflect on the hot path.
	makeStore []func() componentStore
	frozen    bool
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		typeToID: make(map[reflect.Type]ComponentID, 16),
	}
}

// Register declares the component type T in the registry and returns its
// ComponentID. Registering the same type twice returns the existing ID. It
// panics past MaxComponentTypes.
//
// Parameters:
//   - r: The registry to declare T in.
//
// Returns:
//   - The ComponentID assigned to T.
//   - ErrRegistryFrozen if a World has already been built from r.
func Register[T any](r *Registry) (ComponentID, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := r.typeToID[t]; ok {
		return id, nil
	}
	if r.frozen {
		return 0, eris.Wrap(ErrRegistryFrozen, t.String())
	}
	if len(r.idToType) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	id := ComponentID(len(r.idToType))
	r.typeToID[t] = id
	r.idToType = append(r.idToType, t)
	r.makeStore = append(r.makeStore, func() componentStore {
		return &store[T]{}
	})
	return id, nil
}

// MustRegister is Register for registry setup code that treats a frozen
// registry as a programming error.
func MustRegister[T any](r *Registry) ComponentID {
	id, err := Register[T](r)
	if err != nil {
		panic(err)
	}
	return id
}

// Len returns the number of registered component types.
func (r *Registry) Len() int {
	return len(r.idToType)
}

// lookup returns the ComponentID for t.
func (r *Registry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.typeToID[t]
	return id, ok
}

// name returns the type name for a registered ID, for logging.
func (r *Registry) name(id ComponentID) string {
	if int(id) >= len(r.idToType) {
		return "<unregistered>"
	}
	return r.idToType[id].String()
}

// freeze marks the registry immutable. Called once by NewWorld.
func (r *Registry) freeze() {
	r.frozen = true
}
