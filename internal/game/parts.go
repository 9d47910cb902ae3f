package game

import (
	"gridforge/internal/builder"
	"gridforge/internal/components"
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PartTemplate is a placeable prototype: a named box shape that clones into
// fresh world objects. Meshes are generated per clone so every instance owns
// its model.
type PartTemplate struct {
	name  string
	size  rl.Vector3
	color rl.Color
}

func NewPartTemplate(name string, size rl.Vector3, color rl.Color) *PartTemplate {
	return &PartTemplate{name: name, size: size, color: color}
}

func (t *PartTemplate) Name() string {
	return t.name
}

func (t *PartTemplate) Size() rl.Vector3 {
	return t.size
}

func (t *PartTemplate) Clone() *engine.GameObject {
	obj := engine.NewGameObject(t.name)

	mesh := rl.GenMeshCube(t.size.X, t.size.Y, t.size.Z)
	model := rl.LoadModelFromMesh(mesh)
	obj.AddComponent(components.NewModelRenderer(model, t.color))
	obj.AddComponent(components.NewBoxCollider(t.size))

	obj.Start()
	return obj
}

// DefaultParts is the built-in catalog.
func DefaultParts() []builder.Prototype {
	return []builder.Prototype{
		NewPartTemplate("block", rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Beige),
		NewPartTemplate("pillar", rl.Vector3{X: 0.6, Y: 3, Z: 0.6}, rl.LightGray),
		NewPartTemplate("platform", rl.Vector3{X: 3, Y: 0.3, Z: 3}, rl.Brown),
		NewPartTemplate("wall", rl.Vector3{X: 3, Y: 2, Z: 0.3}, rl.Gray),
	}
}
