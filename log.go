package bento

import "github.com/rs/zerolog"

// logWorld emits a one-line summary of the world's registered components,
// for use right after construction.
func logWorld(logger *zerolog.Logger, reg *Registry, slabCap int) {
	ev := logger.Debug()
	arr := zerolog.Arr()
	for i := 0; i < reg.Len(); i++ {
		d := zerolog.Dict().
			Int("component_id", i).
			Str("component_name", reg.name(ComponentID(i)))
		arr = arr.Dict(d)
	}
	ev.Int("total_components", reg.Len()).
		Array("components", arr).
		Int("slab_capacity", slabCap).
		Msg("world created")
}

func logEntity(logger *zerolog.Logger, msg string, e Entity) {
	logger.Debug().
		Uint32("entity_id", e.ID).
		Uint32("entity_version", e.Version).
		Msg(msg)
}

func logComponent(logger *zerolog.Logger, msg string, e Entity, id ComponentID, name string) {
	logger.Debug().
		Uint32("entity_id", e.ID).
		Int("component_id", int(id)).
		Str("component_name", name).
		Msg(msg)
}

func logSystem(logger *zerolog.Logger, msg string, h SystemID, seeded int) {
	logger.Debug().
		Uint32("system_id", h.ID).
		Uint32("system_version", h.Version).
		Int("entities", seeded).
		Msg(msg)
}
