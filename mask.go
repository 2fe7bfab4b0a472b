package bento

// Signature represents a set of up to MaxComponentTypes component IDs as a
// fixed-width bit-set, one bit per registered component type. An entity's
// signature has bit i set iff the entity currently owns component i; a
// system's signature holds the components it requires.
type Signature [4]uint64

// set enables the bit corresponding to the given component ID.
func (s *Signature) set(bit uint8) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	s[i] |= uint64(1) << uint64(o)
}

// unset disables the bit corresponding to the given component ID.
func (s *Signature) unset(bit uint8) {
	i := bit >> 6
	o := bit & 63
	s[i] &= ^(uint64(1) << uint64(o))
}

// Contains reports whether every bit set in sub is also set in s. A system
// with signature sub matches exactly the entities whose signature Contains
// sub.
//
// Parameters:
//   - sub: The signature representing the required subset of components.
//
// Returns:
//   - true if s is a superset of sub, false otherwise.
func (s Signature) Contains(sub Signature) bool {
	return (s[0]&sub[0]) == sub[0] &&
		(s[1]&sub[1]) == sub[1] &&
		(s[2]&sub[2]) == sub[2] &&
		(s[3]&sub[3]) == sub[3]
}

// Has reports whether the bit for the given component ID is set.
func (s Signature) Has(id ComponentID) bool {
	i := uint8(id) >> 6
	o := uint8(id) & 63
	return (s[i] & (uint64(1) << uint64(o))) != 0
}

// IsEmpty reports whether no bit is set.
func (s Signature) IsEmpty() bool {
	return s == Signature{}
}

// makeSignature builds a Signature from a list of component IDs.
func makeSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s.set(uint8(id))
	}
	return s
}
