package bento

// ProcessFunc is the logic attached to a system. It receives a snapshot of
// the system's current working set and the world for component access. The
// snapshot is owned by the caller of the function for the duration of the
// call only; copy it for longer use.
type ProcessFunc func(entities []Entity, w *World)

// system binds a processing function to a required-component signature and
// maintains the set of matching entities incrementally: the world edits the
// set on every composition change instead of recomputing it each pass.
type system struct {
	signature Signature
	fn        ProcessFunc
	// Working set: dense slice for iteration plus an index map for O(1)
	// membership edits. Removal swap-compacts, so iteration order within a
	// system is unspecified.
	entities []Entity
	index    map[Entity]int
}

func newSystem(signature Signature, fn ProcessFunc) *system {
	return &system{
		signature: signature,
		fn:        fn,
		index:     make(map[Entity]int, 16),
	}
}

// insert adds e to the working set. Idempotent.
func (s *system) insert(e Entity) {
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
}

// remove drops e from the working set. Idempotent.
func (s *system) remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[i] = moved
	s.index[moved] = i
	s.entities = s.entities[:last]
	delete(s.index, e)
}

// process invokes the system's function with a copy of the working set, so
// membership edits made by the function never perturb the iteration handed
// to it.
func (s *system) process(w *World) {
	snapshot := make([]Entity, len(s.entities))
	copy(snapshot, s.entities)
	s.fn(snapshot, w)
}

// systemArena owns the registered systems behind generation-checked
// SystemIDs, mirroring the entity arena's free-list recipe. The order slice
// preserves creation order, which is the order Process runs systems in.
type systemArena struct {
	slots    []*system
	versions []uint32
	free     []uint32
	order    []SystemID
	nextVer  uint32
}

func newSystemArena() *systemArena {
	return &systemArena{nextVer: 1}
}

func (a *systemArena) add(s *system) SystemID {
	var id uint32
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[id] = s
	} else {
		id = uint32(len(a.slots))
		a.slots = append(a.slots, s)
		a.versions = append(a.versions, 0)
	}
	ver := a.nextVer
	a.nextVer++
	a.versions[id] = ver
	h := SystemID{ID: id, Version: ver}
	a.order = append(a.order, h)
	return h
}

// get resolves a handle, or nil if it is stale or was never issued.
func (a *systemArena) get(h SystemID) *system {
	if int(h.ID) >= len(a.versions) {
		return nil
	}
	v := a.versions[h.ID]
	if v == 0 || v != h.Version {
		return nil
	}
	return a.slots[h.ID]
}

// drop releases the system behind h, keeping the relative creation order of
// the remaining systems. Reports whether h was live.
func (a *systemArena) drop(h SystemID) bool {
	if a.get(h) == nil {
		return false
	}
	a.versions[h.ID] = 0
	a.slots[h.ID] = nil
	a.free = append(a.free, h.ID)
	for i, other := range a.order {
		if other == h {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// each calls fn for every live system in creation order.
func (a *systemArena) each(fn func(*system)) {
	for _, h := range a.order {
		fn(a.slots[h.ID])
	}
}

func (a *systemArena) count() int {
	return len(a.order)
}
