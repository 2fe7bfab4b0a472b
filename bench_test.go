package bento_test

import (
	"fmt"
	"testing"

	"github.com/hakozume/bento"
)

func newBenchWorld() (*bento.World, bento.ComponentID, bento.ComponentID) {
	reg := bento.NewRegistry()
	posID := bento.MustRegister[Position](reg)
	velID := bento.MustRegister[Velocity](reg)
	bento.MustRegister[Health](reg)
	return bento.NewWorld(reg), posID, velID
}

func BenchmarkCreateEntity(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				w, _, _ := newBenchWorld()
				for j := 0; j < size; j++ {
					w.CreateEntity()
				}
			}
		})
	}
}

func BenchmarkAddComponent(b *testing.B) {
	w, _, _ := newBenchWorld()
	ents := w.CreateEntities(b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bento.AddComponent(w, ents[i], Position{X: 1}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetComponent(b *testing.B) {
	w, _, _ := newBenchWorld()
	e := w.CreateEntity()
	if _, err := bento.AddComponent(w, e, Position{X: 1}); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bento.GetComponent[Position](w, e); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProcess(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			w, posID, velID := newBenchWorld()
			for _, e := range w.CreateEntities(size) {
				if _, err := bento.AddComponent(w, e, Position{}); err != nil {
					b.Fatal(err)
				}
				if _, err := bento.AddComponent(w, e, Velocity{VX: 1, VY: 1}); err != nil {
					b.Fatal(err)
				}
			}
			_, err := w.CreateSystem(func(entities []bento.Entity, w *bento.World) {
				for _, e := range entities {
					p, _ := bento.GetComponent[Position](w, e)
					v, _ := bento.GetComponent[Velocity](w, e)
					p.X += v.VX
					p.Y += v.VY
				}
			}, posID, velID)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w.Process()
			}
		})
	}
}

func BenchmarkEntityChurn(b *testing.B) {
	w, _, _ := newBenchWorld()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ents := w.CreateEntities(1000)
		for _, e := range ents {
			if _, err := bento.AddComponent(w, e, Position{}); err != nil {
				b.Fatal(err)
			}
		}
		if err := w.RemoveEntities(ents); err != nil {
			b.Fatal(err)
		}
	}
}
