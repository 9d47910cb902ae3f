package physics

import (
	"math"

	"gridforge/internal/components"
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 5.0

// CellKey for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// World is the spatial query backend: it tracks every collidable object,
// integrates simple gravity for unanchored rigidbodies, and answers
// raycast and overlap-sphere queries.
type World struct {
	Gravity rl.Vector3
	FloorY  float32

	objects []*engine.GameObject
	grid    map[CellKey][]*engine.GameObject
	dirty   bool
}

func NewWorld() *World {
	return &World{
		Gravity: rl.Vector3{X: 0, Y: -20.0, Z: 0},
		FloorY:  0,
		objects: make([]*engine.GameObject, 0),
		grid:    make(map[CellKey][]*engine.GameObject),
	}
}

func (w *World) Add(g *engine.GameObject) {
	w.objects = append(w.objects, g)
	w.dirty = true
}

func (w *World) Remove(g *engine.GameObject) {
	for i, obj := range w.objects {
		if obj == g {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			w.dirty = true
			return
		}
	}
}

func (w *World) Contains(g *engine.GameObject) bool {
	for _, obj := range w.objects {
		if obj == g {
			return true
		}
	}
	return false
}

func (w *World) Objects() []*engine.GameObject {
	return w.objects
}

// Update integrates velocity and gravity for dynamic rigidbodies and
// settles them on the floor plane.
func (w *World) Update(deltaTime float32) {
	for _, obj := range w.objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.Anchored || rb.IsKinematic {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
		}

		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)

		// Settle on the floor plane
		halfHeight := float32(0.5)
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			halfHeight = box.GetWorldSize().Y / 2
		} else if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			halfHeight = sphere.BoundingRadius()
		}
		if obj.Transform.Position.Y-halfHeight < w.FloorY && rb.Velocity.Y < 0 {
			obj.Transform.Position.Y = w.FloorY + halfHeight
			rb.Velocity.Y = 0
		}
	}
	w.dirty = true
}

// rebuildGrid clears and repopulates the spatial hash grid
func (w *World) rebuildGrid() {
	for k := range w.grid {
		delete(w.grid, k)
	}
	for _, obj := range w.objects {
		cell := posToCell(obj.WorldPosition())
		w.grid[cell] = append(w.grid[cell], obj)
	}
	w.dirty = false
}

// boundingRadius derives a bounding sphere radius from whichever collider
// the object carries.
func boundingRadius(obj *engine.GameObject) (float32, bool) {
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		return sphere.BoundingRadius(), true
	}
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		return box.BoundingRadius(), true
	}
	return 0, false
}

// OverlapSphere returns every collidable object whose bounding sphere
// intersects the sphere at center with the given radius. Objects matching
// the exclude predicate are skipped. False positives near the boundary are
// acceptable; misses are not.
func (w *World) OverlapSphere(center rl.Vector3, radius float32, exclude func(*engine.GameObject) bool) []*engine.GameObject {
	if w.dirty {
		w.rebuildGrid()
	}

	var result []*engine.GameObject
	seen := make(map[*engine.GameObject]bool)

	// Check all cells the query sphere can reach
	reach := int(math.Ceil(float64(radius)/CellSize)) + 1
	cell := posToCell(center)
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for dz := -reach; dz <= reach; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				for _, obj := range w.grid[key] {
					if seen[obj] || !obj.Active {
						continue
					}
					seen[obj] = true
					if exclude != nil && exclude(obj) {
						continue
					}
					br, ok := boundingRadius(obj)
					if !ok {
						continue
					}
					dist := rl.Vector3Length(rl.Vector3Subtract(obj.WorldPosition(), center))
					if dist <= radius+br {
						result = append(result, obj)
					}
				}
			}
		}
	}
	return result
}
