package world

import (
	"gridforge/internal/components"
	"gridforge/internal/engine"
	"gridforge/internal/physics"

	"github.com/rs/zerolog"
)

// World couples the scene graph with the spatial query backend and the
// garbage sweep. It implements the object-membership interface the
// placement engine consumes: Attach puts an object in both scene and
// physics, AttachVisual in the scene only.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Garbage *Garbage

	log zerolog.Logger
}

func New(log zerolog.Logger) *World {
	w := &World{
		Scene:   engine.NewScene("main"),
		Physics: physics.NewWorld(),
		log:     log.With().Str("component", "world").Logger(),
	}
	w.Garbage = NewGarbage(w)
	return w
}

func (w *World) Attach(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.Add(g)
}

func (w *World) AttachVisual(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
}

func (w *World) Detach(g *engine.GameObject) {
	w.Scene.RemoveGameObject(g)
	w.Physics.Remove(g)
}

// Destroy removes the object from the world and frees its models. Safe to
// call on an object that is already gone.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil {
		return
	}
	w.Detach(g)
	g.Active = false
	g.Walk(func(o *engine.GameObject) {
		if mr := engine.GetComponent[*components.ModelRenderer](o); mr != nil {
			mr.Unload()
		}
	})
}

func (w *World) Contains(g *engine.GameObject) bool {
	return w.Scene.Contains(g)
}

// Update advances one frame: component updates, physics integration, then
// the garbage deadline sweep.
func (w *World) Update(deltaTime float32, now float64) {
	w.Scene.Update(deltaTime)
	w.Physics.Update(deltaTime)
	w.Garbage.Update(now)
}

// Draw renders every model in the scene. Must run inside BeginMode3D.
func (w *World) Draw() {
	for _, obj := range w.Scene.GameObjects {
		obj.Walk(func(o *engine.GameObject) {
			if mr := engine.GetComponent[*components.ModelRenderer](o); mr != nil {
				mr.Draw()
			}
		})
	}
}

// Unload frees every model in the scene, for shutdown.
func (w *World) Unload() {
	for _, obj := range w.Scene.GameObjects {
		obj.Walk(func(o *engine.GameObject) {
			if mr := engine.GetComponent[*components.ModelRenderer](o); mr != nil {
				mr.Unload()
			}
		})
	}
}
