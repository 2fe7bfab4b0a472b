package bento

import "github.com/rs/zerolog"

// Option configures a World at construction time.
type Option func(*World)

// WithSlabCapacity sets the number of slots allocated per slab. Values below
// 1 fall back to DefaultSlabCapacity.
func WithSlabCapacity(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.slabCap = n
		}
	}
}

// WithInitialCapacity pre-allocates slots for at least n entities so that the
// first n creations never grow the arena mid-frame.
func WithInitialCapacity(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.initialCap = n
		}
	}
}

// WithLogger attaches a structured logger to the world. Entity, component and
// system lifecycle is logged at debug level. The default logger discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}
