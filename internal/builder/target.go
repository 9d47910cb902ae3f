package builder

import (
	"gridforge/internal/engine"
)

// Targeter converts the pointer position into a world ray and returns the
// nearest solid hit, skipping water surfaces and the ignore list.
type Targeter struct {
	View        RayView
	Query       SpatialQuery
	MaxDistance float32
}

func (t Targeter) Target(pointerX, pointerY float32, ignore ...*engine.GameObject) (engine.RaycastHit, bool) {
	origin, direction := t.View.ScreenPointToRay(pointerX, pointerY)
	return t.Query.Raycast(origin, direction, t.MaxDistance, func(obj *engine.GameObject) bool {
		if obj.HasTag(TagWater) {
			return true
		}
		for _, ig := range ignore {
			if obj == ig {
				return true
			}
		}
		return false
	})
}
