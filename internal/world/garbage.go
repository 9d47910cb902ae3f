package world

import (
	"gridforge/internal/engine"
)

type garbageEntry struct {
	obj      *engine.GameObject
	deadline float64
}

// Garbage is the timed-destruction facility. Scheduling is fire-and-forget:
// the sweep destroys objects at their deadline with no regard for who else
// still references them, so callers keep soft references only.
type Garbage struct {
	world   *World
	entries []garbageEntry
	now     float64
	swept   int
}

func NewGarbage(w *World) *Garbage {
	return &Garbage{world: w}
}

// ScheduleDestroy registers the object for destruction seconds from now.
func (g *Garbage) ScheduleDestroy(obj *engine.GameObject, seconds float32) {
	g.entries = append(g.entries, garbageEntry{
		obj:      obj,
		deadline: g.now + float64(seconds),
	})
}

// Update sweeps every entry whose deadline has passed. Objects already
// removed from the world are dropped silently.
func (g *Garbage) Update(now float64) {
	g.now = now

	kept := g.entries[:0]
	for _, e := range g.entries {
		if e.deadline > now {
			kept = append(kept, e)
			continue
		}
		if g.world.Contains(e.obj) {
			g.world.Destroy(e.obj)
			g.swept++
		}
	}
	g.entries = kept
}

// Pending is the number of objects still awaiting their deadline.
func (g *Garbage) Pending() int {
	return len(g.entries)
}

// Swept is the total number of objects destroyed by the sweep.
func (g *Garbage) Swept() int {
	return g.swept
}
