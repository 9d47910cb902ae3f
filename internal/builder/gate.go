package builder

import (
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Gate answers whether a candidate commit point is blocked by an already
// placed part.
type Gate struct {
	Query  SpatialQuery
	Radius float32
}

// Blocked returns true iff any object within Radius of point carries the
// placed-part tag. Objects matching the exclude predicate are not
// considered. Boundary false positives are acceptable; a miss on a real
// overlap is not.
func (g Gate) Blocked(point rl.Vector3, exclude func(*engine.GameObject) bool) bool {
	for _, obj := range g.Query.OverlapSphere(point, g.Radius, exclude) {
		if obj.HasTag(TagPlaced) {
			return true
		}
	}
	return false
}
