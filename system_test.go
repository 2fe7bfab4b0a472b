package bento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSetSemantics(t *testing.T) {
	s := newSystem(makeSignature(0), nil)
	e1 := Entity{ID: 1, Version: 1}
	e2 := Entity{ID: 2, Version: 1}

	s.insert(e1)
	s.insert(e1) // idempotent
	s.insert(e2)
	assert.Len(t, s.entities, 2)

	s.remove(e1)
	s.remove(e1) // idempotent
	assert.Equal(t, []Entity{e2}, s.entities)

	s.remove(Entity{ID: 99, Version: 1}) // absent, no-op
	assert.Len(t, s.entities, 1)
}

func TestSystemArenaOrder(t *testing.T) {
	a := newSystemArena()

	h1 := a.add(newSystem(Signature{}, nil))
	h2 := a.add(newSystem(Signature{}, nil))
	h3 := a.add(newSystem(Signature{}, nil))
	assert.Equal(t, []SystemID{h1, h2, h3}, a.order)

	require.True(t, a.drop(h2))
	assert.Equal(t, []SystemID{h1, h3}, a.order)
	assert.False(t, a.drop(h2), "double drop must fail")

	// The freed index is reused with a fresh generation; the new system
	// goes to the back of the order.
	h4 := a.add(newSystem(Signature{}, nil))
	assert.Equal(t, h2.ID, h4.ID)
	assert.NotEqual(t, h2.Version, h4.Version)
	assert.Equal(t, []SystemID{h1, h3, h4}, a.order)

	assert.Nil(t, a.get(h2))
	assert.NotNil(t, a.get(h4))
}

func TestSystemProcessSnapshot(t *testing.T) {
	s := newSystem(Signature{}, nil)
	e1 := Entity{ID: 1, Version: 1}
	e2 := Entity{ID: 2, Version: 1}
	s.insert(e1)
	s.insert(e2)

	var got []Entity
	s.fn = func(entities []Entity, _ *World) {
		got = entities
		// Editing the live set mid-iteration must not disturb the slice
		// handed to the function.
		s.remove(e1)
		s.remove(e2)
	}
	s.process(nil)
	assert.ElementsMatch(t, []Entity{e1, e2}, got)
	assert.Empty(t, s.entities)
}
