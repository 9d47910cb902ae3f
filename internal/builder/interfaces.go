package builder

import (
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tags the placement engine reads and writes on world objects.
const (
	// TagPlaced marks committed parts so the collision gate can find them.
	TagPlaced = "building_part"
	// TagWater marks surfaces the targeting ray passes through.
	TagWater = "water"
)

// RayView supplies camera rays for pointer targeting and the camera frame
// for the fallback ghost position.
type RayView interface {
	ScreenPointToRay(x, y float32) (origin, direction rl.Vector3)
	CameraFrame() (position, forward rl.Vector3)
}

// SpatialQuery answers the two geometric questions the engine asks: what
// lies along a ray, and what lies within a radius of a point.
type SpatialQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, exclude func(*engine.GameObject) bool) (engine.RaycastHit, bool)
	OverlapSphere(center rl.Vector3, radius float32, exclude func(*engine.GameObject) bool) []*engine.GameObject
}

// ObjectWorld owns object membership in the live world. Attach registers an
// object with both the scene and the spatial query backend; AttachVisual
// registers with the scene only, which is what the non-solid ghost needs.
type ObjectWorld interface {
	Attach(g *engine.GameObject)
	AttachVisual(g *engine.GameObject)
	Detach(g *engine.GameObject)
	Destroy(g *engine.GameObject)
	Contains(g *engine.GameObject) bool
}

// DestroyScheduler is the external timed-destruction facility. Registration
// is fire-and-forget: the scheduled object may disappear at any later frame
// regardless of what the ledger still references.
type DestroyScheduler interface {
	ScheduleDestroy(g *engine.GameObject, seconds float32)
}

// Prototype is a named, immutable template that clones into fresh world
// objects.
type Prototype interface {
	Name() string
	Clone() *engine.GameObject
}
