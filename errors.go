package bento

import "github.com/rotisserie/eris"

// Sentinel errors returned by the World API. Match them with errors.Is or
// eris.Is; call sites wrap them with additional context.
var (
	// ErrUnknownEntity is returned when an entity handle is dead, recycled,
	// or out of range.
	ErrUnknownEntity = eris.New("unknown entity")
	// ErrDuplicateComponent is returned when adding a component the entity
	// already owns.
	ErrDuplicateComponent = eris.New("component already on entity")
	// ErrMissingComponent is returned when reading or removing a component
	// the entity does not own.
	ErrMissingComponent = eris.New("component not on entity")
	// ErrUnknownSystem is returned when a SystemID is stale or was never
	// issued.
	ErrUnknownSystem = eris.New("unknown system")
	// ErrComponentNotRegistered is returned when a component type is not in
	// the world's registry.
	ErrComponentNotRegistered = eris.New("component type not registered")
	// ErrRegistryFrozen is returned when registering a component type after
	// a World has been built from the registry.
	ErrRegistryFrozen = eris.New("registry is frozen")
	// ErrDuplicateResource is returned when adding a resource whose type is
	// already present.
	ErrDuplicateResource = eris.New("resource of the same type already exists")
	// ErrMissingResource is returned when removing a resource that is not
	// present.
	ErrMissingResource = eris.New("resource not found")
)
