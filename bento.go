// Package bento implements a compact Entity-Component-System runtime where
// the component type set is static and entities and systems are dynamic.
//
// Component values of each type live in their own contiguous dense store,
// kept compact under removal by swapping the last element into the vacated
// offset. Each entity owns a stable slot holding one offset per component
// type; the slot doubles as the entity's identity, protected by a generation
// counter so recycled handles are rejected instead of aliasing. Systems
// declare the component types they require as a bit-set signature and the
// world maintains each system's matching-entity set incrementally as
// composition changes.
//
// Basic usage:
//
//	reg := bento.NewRegistry()
//	posID := bento.MustRegister[Position](reg)
//	w := bento.NewWorld(reg)
//
//	e := w.CreateEntity()
//	bento.AddComponent(w, e, Position{X: 1})
//	w.CreateSystem(func(entities []bento.Entity, w *bento.World) {
//		for _, e := range entities {
//			p, _ := bento.GetComponent[Position](w, e)
//			p.X++
//		}
//	}, posID)
//	w.Process()
//
// A World is single-threaded by construction: no locks, no internal
// goroutines, all mutation inline in the caller's stack.
package bento
