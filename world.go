package bento

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World is the orchestrator and only public surface of the runtime. It owns
// the slot arena, one dense store per registered component type, and the
// registered systems, and keeps every system's working set synchronized with
// entity composition.
//
// A World is confined to one logical thread of control: there are no internal
// locks and all mutation happens inline in the caller's stack.
type World struct {
	registry  *Registry
	slots     *slotArena
	stores    []componentStore
	systems   *systemArena
	resources *Resources
	events    *EventBus
	logger    zerolog.Logger

	slabCap    int
	initialCap int
}

// NewWorld builds a World over the component types declared in reg. The
// registry is frozen: the component type set is fixed for the life of the
// world.
//
// Parameters:
//   - reg: The component registry. Must not be shared with another live
//     World.
//   - opts: Optional configuration, see Option.
//
// Returns:
//   - The newly created World.
func NewWorld(reg *Registry, opts ...Option) *World {
	w := &World{
		registry:  reg,
		systems:   newSystemArena(),
		resources: newResources(),
		events:    &EventBus{},
		logger:    zerolog.Nop(),
		slabCap:   DefaultSlabCapacity,
	}
	for _, opt := range opts {
		opt(w)
	}
	reg.freeze()
	w.stores = make([]componentStore, reg.Len())
	for i, mk := range reg.makeStore {
		w.stores[i] = mk()
	}
	w.slots = newSlotArena(w.slabCap, reg.Len())
	for len(w.slots.versions) < w.initialCap {
		w.slots.addSlab()
	}
	logWorld(&w.logger, reg, w.slabCap)
	return w
}

// CreateEntity creates a new entity with no components. The entity is
// registered with every system whose required signature is empty.
func (w *World) CreateEntity() Entity {
	e := w.slots.make()
	w.systems.each(func(s *system) {
		if s.signature.IsEmpty() {
			s.insert(e)
		}
	})
	logEntity(&w.logger, "entity created", e)
	Publish(w.events, EntityCreated{Entity: e})
	return e
}

// CreateEntities creates a batch of n entities with no components.
func (w *World) CreateEntities(n int) []Entity {
	if n <= 0 {
		return nil
	}
	ents := make([]Entity, n)
	for i := range ents {
		ents[i] = w.CreateEntity()
	}
	return ents
}

// RemoveEntity removes the entity and all of its component data. Components
// are removed one type at a time in ascending ComponentID order, with system
// membership re-evaluated after each removal, so systems observe the
// intermediate signatures during teardown rather than one atomic transition.
// The entity's slot is then recycled; the handle must not be used again.
//
// Returns:
//   - ErrUnknownEntity if e is dead, recycled, or out of range.
func (w *World) RemoveEntity(e Entity) error {
	if !w.slots.alive(e) {
		return eris.Wrap(ErrUnknownEntity, "remove entity")
	}
	for id := 0; id < len(w.stores); id++ {
		if w.slots.has(e.ID, id) {
			w.removeComponentByID(e, ComponentID(id))
		}
	}
	w.slots.freeSlot(e)
	// Only empty-signature systems can still hold e here; every other
	// membership was dropped with its component.
	w.systems.each(func(s *system) {
		s.remove(e)
	})
	logEntity(&w.logger, "entity removed", e)
	Publish(w.events, EntityRemoved{Entity: e})
	return nil
}

// RemoveEntities removes a batch of entities, stopping at the first error.
func (w *World) RemoveEntities(ents []Entity) error {
	for _, e := range ents {
		if err := w.RemoveEntity(e); err != nil {
			return err
		}
	}
	return nil
}

// Alive reports whether e is a live entity. Stale handles to recycled slots
// report false.
func (w *World) Alive(e Entity) bool {
	return w.slots.alive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.slots.liveCount()
}

// Signature returns the entity's current signature, derived from its slot.
//
// Returns:
//   - ErrUnknownEntity if e is not alive.
func (w *World) Signature(e Entity) (Signature, error) {
	if !w.slots.alive(e) {
		return Signature{}, eris.Wrap(ErrUnknownEntity, "signature")
	}
	return w.slots.signatureOf(e.ID), nil
}

// CreateSystem registers a system requiring the given component types and
// returns its handle. The working set is retroactively seeded with every
// live entity whose signature already satisfies the system's; afterwards the
// world maintains it incrementally. Systems run in creation order.
//
// Parameters:
//   - fn: The processing function, invoked once per Process call.
//   - comps: The component types the system requires. None means the system
//     matches every entity.
//
// Returns:
//   - The handle of the new system.
//   - ErrComponentNotRegistered if a ComponentID is out of range.
func (w *World) CreateSystem(fn ProcessFunc, comps ...ComponentID) (SystemID, error) {
	for _, id := range comps {
		if int(id) >= w.registry.Len() {
			return SystemID{}, eris.Wrap(ErrComponentNotRegistered, "create system")
		}
	}
	s := newSystem(makeSignature(comps...), fn)
	for id, ver := range w.slots.versions {
		if ver == 0 {
			continue
		}
		if w.slots.signatureOf(uint32(id)).Contains(s.signature) {
			s.insert(Entity{ID: uint32(id), Version: ver})
		}
	}
	h := w.systems.add(s)
	logSystem(&w.logger, "system created", h, len(s.entities))
	return h, nil
}

// RemoveSystem unregisters and destroys the system behind h. The relative
// processing order of the remaining systems is preserved.
//
// Returns:
//   - ErrUnknownSystem if h is stale or was never issued.
func (w *World) RemoveSystem(h SystemID) error {
	if !w.systems.drop(h) {
		return eris.Wrap(ErrUnknownSystem, "remove system")
	}
	logSystem(&w.logger, "system removed", h, 0)
	return nil
}

// SystemCount returns the number of registered systems.
func (w *World) SystemCount() int {
	return w.systems.count()
}

// Process invokes every registered system once, in creation order. Each
// system's function receives a snapshot of its working set, and the pass
// iterates a snapshot of the system order, so structural mutations made
// during the pass (including creating or removing systems) take effect
// immediately on the live structures without perturbing the iteration in
// progress. Entities destroyed mid-pass remain in snapshots already taken
// but fail any generation-checked lookup.
func (w *World) Process() {
	order := make([]SystemID, len(w.systems.order))
	copy(order, w.systems.order)
	for _, h := range order {
		if s := w.systems.get(h); s != nil {
			s.process(w)
		}
	}
}

// Resources returns the world's resource store, a typed singleton bag for
// data shared by systems.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus. The world publishes EntityCreated,
// EntityRemoved, ComponentAdded and ComponentRemoved on it.
func (w *World) Events() *EventBus {
	return w.events
}

// removeComponentByID performs the store swap-removal, slot patching, and
// membership re-evaluation for one component. The caller guarantees e is
// alive and owns the component.
func (w *World) removeComponentByID(e Entity, id ComponentID) {
	ti := int(id)
	offset := w.slots.get(e.ID, ti)
	relocated := w.stores[id].removeAt(offset)
	w.slots.reset(e.ID, ti)
	if relocated != e {
		// The swapped-in element changed address; patch its owner's slot.
		w.slots.set(relocated.ID, ti, offset)
	}
	w.systems.each(func(s *system) {
		if s.signature.Has(id) {
			s.remove(e)
		}
	})
	logComponent(&w.logger, "component removed", e, id, w.registry.name(id))
	Publish(w.events, ComponentRemoved{Entity: e, Component: id})
}

// afterInsert records the new offset and re-evaluates system membership
// after a component insert. Split from the generic AddComponent so the
// membership logic stays off the generic instantiation.
func (w *World) afterInsert(e Entity, id ComponentID, offset uint32) {
	w.slots.set(e.ID, int(id), offset)
	sig := w.slots.signatureOf(e.ID)
	w.systems.each(func(s *system) {
		if sig.Contains(s.signature) {
			s.insert(e)
		}
	})
	logComponent(&w.logger, "component added", e, id, w.registry.name(id))
	Publish(w.events, ComponentAdded{Entity: e, Component: id})
}
