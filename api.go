package bento

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// componentID resolves the ComponentID for T in the world's registry.
func componentID[T any](w *World) (ComponentID, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id, ok := w.registry.lookup(t)
	if !ok {
		return 0, eris.Wrap(ErrComponentNotRegistered, t.String())
	}
	return id, nil
}

// AddComponent stores val as entity e's component of type T, records its
// offset in the entity's slot, and registers e with every system whose
// signature is now satisfied.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to attach the component to.
//   - val: The component value. Pass the zero value for default-initialized
//     components.
//
// Returns:
//   - A pointer to the stored value, valid until the next structural
//     mutation of component type T.
//   - ErrUnknownEntity if e is not alive, ErrComponentNotRegistered if T is
//     not in the registry, or ErrDuplicateComponent if e already owns T.
func AddComponent[T any](w *World, e Entity, val T) (*T, error) {
	if !w.slots.alive(e) {
		return nil, eris.Wrap(ErrUnknownEntity, "add component")
	}
	id, err := componentID[T](w)
	if err != nil {
		return nil, err
	}
	if w.slots.has(e.ID, int(id)) {
		return nil, eris.Wrap(ErrDuplicateComponent, w.registry.name(id))
	}
	st := w.stores[id].(*store[T])
	offset := st.insert(e, val)
	w.afterInsert(e, id, offset)
	return st.at(offset), nil
}

// GetComponent retrieves a pointer to entity e's component of type T.
//
// Returns:
//   - A pointer to the stored value, valid until the next structural
//     mutation of component type T.
//   - ErrUnknownEntity if e is not alive, ErrComponentNotRegistered if T is
//     not in the registry, or ErrMissingComponent if e does not own T.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	if !w.slots.alive(e) {
		return nil, eris.Wrap(ErrUnknownEntity, "get component")
	}
	id, err := componentID[T](w)
	if err != nil {
		return nil, err
	}
	offset := w.slots.get(e.ID, int(id))
	if offset == noOffset {
		return nil, eris.Wrap(ErrMissingComponent, w.registry.name(id))
	}
	return w.stores[id].(*store[T]).at(offset), nil
}

// HasComponent reports whether entity e is alive and owns a component of
// type T.
func HasComponent[T any](w *World, e Entity) bool {
	if !w.slots.alive(e) {
		return false
	}
	id, err := componentID[T](w)
	if err != nil {
		return false
	}
	return w.slots.has(e.ID, int(id))
}

// RemoveComponent detaches the component of type T from entity e. The value
// is swap-removed from the dense store, possibly relocating another entity's
// value, whose slot is patched to the new offset. e is unregistered from
// every system requiring T.
//
// Returns:
//   - ErrUnknownEntity if e is not alive, ErrComponentNotRegistered if T is
//     not in the registry, or ErrMissingComponent if e does not own T.
func RemoveComponent[T any](w *World, e Entity) error {
	if !w.slots.alive(e) {
		return eris.Wrap(ErrUnknownEntity, "remove component")
	}
	id, err := componentID[T](w)
	if err != nil {
		return err
	}
	if !w.slots.has(e.ID, int(id)) {
		return eris.Wrap(ErrMissingComponent, w.registry.name(id))
	}
	w.removeComponentByID(e, id)
	return nil
}
