package bento

// noOffset is the reserved sentinel marking an absent component offset. Valid
// store offsets never reach it.
const noOffset = ^uint32(0)

// DefaultSlabCapacity is the number of slots allocated per slab when no
// WithSlabCapacity option is given.
const DefaultSlabCapacity = 2048

// slotArena hands out and recycles stable slots in bulk-allocated, permanent
// fixed-size slabs. A slot is one row of types offsets, one per registered
// component type, each either a dense-store offset or noOffset. Slabs are
// never released, so a slot index stays valid for the life of the arena and
// can serve directly as the entity's identity.
//
// A parallel generation array protects recycled slots: versions[id] is 0
// while the slot is free and matches the owning Entity.Version while it is
// live. Versions are drawn from a monotonically increasing counter, never
// reset, so a stale handle can not collide with a later tenant of the slot.
type slotArena struct {
	slabs    [][]uint32 // each slab is slabCap*types offsets, row-major
	versions []uint32   // slot generation, 0 = free
	free     []uint32   // stack of recycled slot indices
	slabCap  int        // slots per slab
	types    int        // offsets per slot
	nextVer  uint32     // version for the next created entity
}

func newSlotArena(slabCap, types int) *slotArena {
	return &slotArena{
		slabCap: slabCap,
		types:   types,
		nextVer: 1,
	}
}

// addSlab allocates one new slab, resets every slot in it to all-absent, and
// pushes all of its slots onto the free list.
func (a *slotArena) addSlab() {
	slab := make([]uint32, a.slabCap*a.types)
	for i := range slab {
		slab[i] = noOffset
	}
	base := uint32(len(a.slabs) * a.slabCap)
	a.slabs = append(a.slabs, slab)
	a.versions = append(a.versions, make([]uint32, a.slabCap)...)
	for i := a.slabCap - 1; i >= 0; i-- {
		a.free = append(a.free, base+uint32(i))
	}
}

// make pops a slot from the free list, growing by one slab when empty, and
// returns it as a live Entity.
func (a *slotArena) make() Entity {
	if len(a.free) == 0 {
		a.addSlab()
	}
	last := len(a.free) - 1
	id := a.free[last]
	a.free = a.free[:last]
	ver := a.nextVer
	a.nextVer++
	a.versions[id] = ver
	return Entity{ID: id, Version: ver}
}

// freeSlot resets the slot to all-absent, kills its generation, and returns
// it to the free list. The caller guarantees the entity is live.
func (a *slotArena) freeSlot(e Entity) {
	row := a.row(e.ID)
	for i := range row {
		row[i] = noOffset
	}
	a.versions[e.ID] = 0
	a.free = append(a.free, e.ID)
}

// alive reports whether e references a live slot of the matching generation.
func (a *slotArena) alive(e Entity) bool {
	if int(e.ID) >= len(a.versions) {
		return false
	}
	v := a.versions[e.ID]
	return v != 0 && v == e.Version
}

// row returns the slot's offset row. No bounds check beyond slicing.
func (a *slotArena) row(id uint32) []uint32 {
	slab := a.slabs[int(id)/a.slabCap]
	base := (int(id) % a.slabCap) * a.types
	return slab[base : base+a.types]
}

func (a *slotArena) get(id uint32, typeIdx int) uint32 {
	return a.row(id)[typeIdx]
}

func (a *slotArena) set(id uint32, typeIdx int, offset uint32) {
	a.row(id)[typeIdx] = offset
}

func (a *slotArena) has(id uint32, typeIdx int) bool {
	return a.row(id)[typeIdx] != noOffset
}

func (a *slotArena) reset(id uint32, typeIdx int) {
	a.row(id)[typeIdx] = noOffset
}

// signatureOf derives the slot's signature from its offset row. Signatures
// are never stored; the offset row is the single source of truth.
func (a *slotArena) signatureOf(id uint32) Signature {
	var s Signature
	row := a.row(id)
	for i, off := range row {
		if off != noOffset {
			s.set(uint8(i))
		}
	}
	return s
}

// liveCount returns the number of live slots.
func (a *slotArena) liveCount() int {
	return len(a.versions) - len(a.free)
}
