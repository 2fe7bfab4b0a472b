package bento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hakozume/bento"
)

type scoreEvent struct {
	Value int
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &bento.EventBus{}
	received := 0
	bento.Subscribe(bus, func(e scoreEvent) {
		received += e.Value
	})
	bento.Subscribe(bus, func(e scoreEvent) {
		received += e.Value * 2
	})

	bento.Publish(bus, scoreEvent{Value: 1})
	assert.Equal(t, 3, received)

	bento.Publish(bus, scoreEvent{Value: 2})
	assert.Equal(t, 9, received)
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &bento.EventBus{}
	scores := 0
	positions := 0
	bento.Subscribe(bus, func(e scoreEvent) {
		scores += e.Value
	})
	bento.Subscribe(bus, func(p Position) {
		positions += int(p.X)
	})

	bento.Publish(bus, scoreEvent{Value: 42})
	bento.Publish(bus, Position{X: 10})
	assert.Equal(t, 42, scores)
	assert.Equal(t, 10, positions)
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &bento.EventBus{}
	// No handlers registered; publishing must be a no-op.
	bento.Publish(bus, scoreEvent{Value: 42})
}

func TestEventBusManySubscribers(t *testing.T) {
	bus := &bento.EventBus{}
	const numSubs = 100
	received := 0
	for i := 0; i < numSubs; i++ {
		bento.Subscribe(bus, func(e scoreEvent) {
			received += e.Value
		})
	}
	bento.Publish(bus, scoreEvent{Value: 1})
	assert.Equal(t, numSubs, received)
}
