package bento

// Entity identifies one combinable bag of component data. It pairs a
// recyclable slot index with a generation counter so that a handle kept past
// RemoveEntity fails validation instead of silently aliasing whatever entity
// later inherits the slot.
type Entity struct {
	// ID is the index of the entity's slot. Slots are recycled, so the ID
	// alone does not identify an entity.
	ID uint32
	// Version is the slot generation at the time the entity was created.
	// It is 0 only for the zero Entity, which is never alive.
	Version uint32
}

// SystemID identifies a registered system. Like Entity it is an
// (index, generation) pair: a handle to a removed system is rejected rather
// than reaching an unrelated system that reused the index.
type SystemID struct {
	ID      uint32
	Version uint32
}
