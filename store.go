package bento

// componentStore is the type-erased face of one component type's dense
// storage. The world holds one per registered type, indexed by ComponentID;
// the typed half of the API is recovered by the generic functions in api.go.
type componentStore interface {
	// removeAt swap-compacts the element at offset and returns the entity
	// now occupying offset (the removed owner itself if it was last). The
	// caller must patch the relocated entity's slot offset or the store and
	// slots fall out of sync.
	removeAt(offset uint32) Entity
	// ownerAt returns the entity owning the element at offset.
	ownerAt(offset uint32) Entity
	// len returns the number of stored elements.
	len() int
}

// store is the contiguous storage for one component type: parallel dense
// slices of values and owning entities sharing offsets. Invariant: for every
// valid offset a, the owner's slot offset for this type equals a.
type store[T any] struct {
	values []T
	owners []Entity
}

// insert appends val for owner and returns the new offset.
func (s *store[T]) insert(owner Entity, val T) uint32 {
	offset := uint32(len(s.values))
	s.values = append(s.values, val)
	s.owners = append(s.owners, owner)
	return offset
}

// at returns a pointer to the value at offset. The pointer is valid until the
// next structural mutation of this component type.
func (s *store[T]) at(offset uint32) *T {
	return &s.values[offset]
}

func (s *store[T]) removeAt(offset uint32) Entity {
	last := len(s.values) - 1
	s.values[offset] = s.values[last]
	s.owners[offset] = s.owners[last]
	relocated := s.owners[offset]

	var zero T
	s.values[last] = zero // drop references held by the vacated element
	s.values = s.values[:last]
	s.owners = s.owners[:last]
	return relocated
}

func (s *store[T]) ownerAt(offset uint32) Entity {
	return s.owners[offset]
}

func (s *store[T]) len() int {
	return len(s.values)
}
