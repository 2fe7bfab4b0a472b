package bento

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EventBus is a type-safe synchronous publish/subscribe bus for decoupled
// communication between systems. Handlers run inline in the publisher's call
// stack, in subscription order.
//
// The world publishes its own lifecycle events (EntityCreated, EntityRemoved,
// ComponentAdded, ComponentRemoved) on the bus returned by World.Events.
// Handlers for those events run in the middle of the triggering operation and
// must not mutate entity composition.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID uint8
}

// Lifecycle events published by the World.
type (
	// EntityCreated is published after a new entity is live.
	EntityCreated struct{ Entity Entity }
	// EntityRemoved is published after the entity's slot has been recycled.
	// The handle in the event is already dead.
	EntityRemoved struct{ Entity Entity }
	// ComponentAdded is published after a component insert completes.
	ComponentAdded struct {
		Entity    Entity
		Component ComponentID
	}
	// ComponentRemoved is published after a component removal completes.
	ComponentRemoved struct {
		Entity    Entity
		Component ComponentID
	}
)

// Subscribe registers a handler to be called when an event of type T is
// published. Handlers are stored in the order they are subscribed.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id := bus.getEventTypeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts an event of type T to all registered handlers for that
// type, synchronously and in subscription order. Publishing a type with no
// subscribers is a cheap no-op.
//
// Parameters:
//   - bus: The EventBus instance to publish to.
//   - event: The event data of type T to be sent to handlers.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := bus.eventTypeMap[t]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if len(bus.eventTypeMap) >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	id := bus.nextEventTypeID
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
