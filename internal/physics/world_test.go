package physics

import (
	"testing"

	"gridforge/internal/components"
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func boxObject(name string, pos rl.Vector3, size rl.Vector3) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	collider := &components.BoxCollider{Size: size}
	obj.AddComponent(collider)
	return obj
}

func sphereObject(name string, pos rl.Vector3, radius float32) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	collider := &components.SphereCollider{Radius: radius}
	obj.AddComponent(collider)
	return obj
}

func TestRaycastHitsBox(t *testing.T) {
	w := NewWorld()
	box := boxObject("target", rl.Vector3{X: 0, Y: 0, Z: -10}, rl.Vector3{X: 2, Y: 2, Z: 2})
	w.Add(box)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 100, nil)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Object != box {
		t.Errorf("hit wrong object: %v", hit.Object.Name)
	}
	if hit.Distance < 8.9 || hit.Distance > 9.1 {
		t.Errorf("expected distance ~9, got %f", hit.Distance)
	}
	if hit.Normal.Z != 1 {
		t.Errorf("expected +Z face normal, got %v", hit.Normal)
	}
}

func TestRaycastMissesBox(t *testing.T) {
	w := NewWorld()
	w.Add(boxObject("target", rl.Vector3{X: 0, Y: 0, Z: -10}, rl.Vector3{X: 2, Y: 2, Z: 2}))

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 1, Z: 0}, 100, nil); ok {
		t.Error("ray pointing away should miss")
	}
	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 5, nil); ok {
		t.Error("ray shorter than distance to box should miss")
	}
}

func TestRaycastReturnsClosest(t *testing.T) {
	w := NewWorld()
	far := boxObject("far", rl.Vector3{X: 0, Y: 0, Z: -20}, rl.Vector3{X: 2, Y: 2, Z: 2})
	near := boxObject("near", rl.Vector3{X: 0, Y: 0, Z: -10}, rl.Vector3{X: 2, Y: 2, Z: 2})
	w.Add(far)
	w.Add(near)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 100, nil)
	if !ok || hit.Object != near {
		t.Errorf("expected nearest object, got %+v ok=%v", hit, ok)
	}
}

func TestRaycastExcludePredicate(t *testing.T) {
	w := NewWorld()
	near := boxObject("near", rl.Vector3{X: 0, Y: 0, Z: -10}, rl.Vector3{X: 2, Y: 2, Z: 2})
	far := boxObject("far", rl.Vector3{X: 0, Y: 0, Z: -20}, rl.Vector3{X: 2, Y: 2, Z: 2})
	w.Add(near)
	w.Add(far)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 100, func(g *engine.GameObject) bool {
		return g == near
	})
	if !ok || hit.Object != far {
		t.Errorf("exclude predicate should skip near box, got %+v ok=%v", hit, ok)
	}
}

func TestRaycastSkipsInactive(t *testing.T) {
	w := NewWorld()
	box := boxObject("target", rl.Vector3{X: 0, Y: 0, Z: -10}, rl.Vector3{X: 2, Y: 2, Z: 2})
	box.Active = false
	w.Add(box)

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 100, nil); ok {
		t.Error("inactive object should not be hit")
	}
}

func TestRaycastHitsSphere(t *testing.T) {
	w := NewWorld()
	sphere := sphereObject("ball", rl.Vector3{X: 0, Y: 0, Z: -10}, 1)
	w.Add(sphere)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 100, nil)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Distance < 8.9 || hit.Distance > 9.1 {
		t.Errorf("expected distance ~9, got %f", hit.Distance)
	}
	if hit.Normal.Z < 0.99 {
		t.Errorf("normal should point back at ray origin, got %v", hit.Normal)
	}
}

func TestOverlapSphereFindsNeighbors(t *testing.T) {
	w := NewWorld()
	inside := boxObject("inside", rl.Vector3{X: 1, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	outside := boxObject("outside", rl.Vector3{X: 50, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	w.Add(inside)
	w.Add(outside)

	found := w.OverlapSphere(rl.Vector3{}, 2, nil)
	if len(found) != 1 || found[0] != inside {
		t.Fatalf("expected only the nearby object, got %d results", len(found))
	}
}

func TestOverlapSphereExclude(t *testing.T) {
	w := NewWorld()
	a := boxObject("a", rl.Vector3{X: 1, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := boxObject("b", rl.Vector3{X: -1, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	w.Add(a)
	w.Add(b)

	found := w.OverlapSphere(rl.Vector3{}, 2, func(g *engine.GameObject) bool { return g == a })
	if len(found) != 1 || found[0] != b {
		t.Fatalf("expected only b, got %d results", len(found))
	}
}

func TestOverlapSphereAfterMove(t *testing.T) {
	w := NewWorld()
	obj := boxObject("mover", rl.Vector3{X: 50, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	w.Add(obj)

	if found := w.OverlapSphere(rl.Vector3{}, 2, nil); len(found) != 0 {
		t.Fatalf("expected no results before move, got %d", len(found))
	}

	obj.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	w.Update(0.016)

	if found := w.OverlapSphere(rl.Vector3{}, 2, nil); len(found) != 1 {
		t.Fatalf("grid should pick up moved object, got %d results", len(found))
	}
}

func TestRemoveStopsQueries(t *testing.T) {
	w := NewWorld()
	obj := boxObject("gone", rl.Vector3{X: 0, Y: 0, Z: -10}, rl.Vector3{X: 2, Y: 2, Z: 2})
	w.Add(obj)
	w.Remove(obj)

	if w.Contains(obj) {
		t.Error("removed object should not be contained")
	}
	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: -1}, 100, nil); ok {
		t.Error("removed object should not be hit")
	}
	if found := w.OverlapSphere(rl.Vector3{X: 0, Y: 0, Z: -10}, 3, nil); len(found) != 0 {
		t.Errorf("removed object should not overlap, got %d results", len(found))
	}
}

func TestGravitySettlesOnFloor(t *testing.T) {
	w := NewWorld()
	obj := boxObject("crate", rl.Vector3{X: 0, Y: 5, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	obj.AddComponent(components.NewRigidbody())
	w.Add(obj)

	for i := 0; i < 600; i++ {
		w.Update(0.016)
	}

	if obj.Transform.Position.Y < 0.49 || obj.Transform.Position.Y > 0.51 {
		t.Errorf("expected crate resting at half height, got y=%f", obj.Transform.Position.Y)
	}
}

func TestAnchoredBodyIgnoresGravity(t *testing.T) {
	w := NewWorld()
	obj := boxObject("pinned", rl.Vector3{X: 0, Y: 5, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rb := components.NewRigidbody()
	rb.Anchored = true
	obj.AddComponent(rb)
	w.Add(obj)

	w.Update(1.0)

	if obj.Transform.Position.Y != 5 {
		t.Errorf("anchored body moved to y=%f", obj.Transform.Position.Y)
	}
}
