// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/hakozume/bento"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		reg := bento.NewRegistry()
		bento.MustRegister[comp1](reg)
		bento.MustRegister[comp2](reg)
		w := bento.NewWorld(reg, bento.WithInitialCapacity(numEntities))

		for i := 0; i < iters; i++ {
			ents := w.CreateEntities(numEntities)
			for _, e := range ents {
				if _, err := bento.AddComponent(w, e, comp1{V: 1, W: 1}); err != nil {
					panic(err)
				}
				if _, err := bento.AddComponent(w, e, comp2{V: 2, W: 2}); err != nil {
					panic(err)
				}
			}
			for _, e := range ents {
				if err := w.RemoveEntity(e); err != nil {
					panic(err)
				}
			}
		}
	}
}
