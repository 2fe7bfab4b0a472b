package bento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureSetUnset(t *testing.T) {
	var s Signature
	assert.True(t, s.IsEmpty())

	// One bit per word boundary region.
	for _, bit := range []uint8{0, 63, 64, 127, 128, 255} {
		s.set(bit)
		assert.True(t, s.Has(ComponentID(bit)), "bit %d", bit)
	}
	assert.False(t, s.IsEmpty())

	s.unset(64)
	assert.False(t, s.Has(64))
	assert.True(t, s.Has(63))
	assert.True(t, s.Has(127))
}

func TestSignatureContains(t *testing.T) {
	full := makeSignature(1, 5, 70, 200)
	sub := makeSignature(5, 200)

	assert.True(t, full.Contains(sub))
	assert.False(t, sub.Contains(full))
	assert.True(t, full.Contains(full))
	assert.True(t, full.Contains(Signature{}), "every signature contains the empty one")
	assert.True(t, Signature{}.Contains(Signature{}))

	other := makeSignature(5, 201)
	assert.False(t, full.Contains(other))
}
