// Profiling:
// go build ./profile/process
// go tool pprof -http=":8000" -nodefraction=0.001 ./process cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/hakozume/bento"
)

type position struct {
	X, Y float64
}

type velocity struct {
	VX, VY float64
}

func main() {
	iters := 10000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	reg := bento.NewRegistry()
	posID := bento.MustRegister[position](reg)
	velID := bento.MustRegister[velocity](reg)
	w := bento.NewWorld(reg, bento.WithInitialCapacity(numEntities))

	for _, e := range w.CreateEntities(numEntities) {
		if _, err := bento.AddComponent(w, e, position{}); err != nil {
			panic(err)
		}
		if _, err := bento.AddComponent(w, e, velocity{VX: 1, VY: -1}); err != nil {
			panic(err)
		}
	}

	if _, err := w.CreateSystem(func(entities []bento.Entity, w *bento.World) {
		for _, e := range entities {
			pos, err := bento.GetComponent[position](w, e)
			if err != nil {
				panic(err)
			}
			vel, err := bento.GetComponent[velocity](w, e)
			if err != nil {
				panic(err)
			}
			pos.X += vel.VX
			pos.Y += vel.VY
		}
	}, posID, velID); err != nil {
		panic(err)
	}

	for i := 0; i < iters; i++ {
		w.Process()
	}
}
