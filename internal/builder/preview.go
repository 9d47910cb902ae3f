package builder

import (
	"gridforge/internal/components"
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Preview owns the single ghost object and its frame-selection state. The
// ghost is scene-only: it never enters the spatial query backend, carries no
// rigidbody and no tags, so it can neither block a commit nor catch its own
// targeting ray.
type Preview struct {
	ghost *engine.GameObject
	proto Prototype

	surfacePoint  rl.Vector3
	surfaceNormal rl.Vector3
	haveSurface   bool
}

// Ghost returns the live ghost object, or nil when none exists.
func (p *Preview) Ghost() *engine.GameObject {
	return p.ghost
}

// Proto returns the prototype the ghost previews.
func (p *Preview) Proto() Prototype {
	return p.proto
}

// Spawn replaces any existing ghost with a fresh translucent clone of proto.
func (p *Preview) Spawn(proto Prototype, world ObjectWorld) {
	p.Destroy(world)
	p.proto = proto

	ghost := proto.Clone()
	ghost.Name = proto.Name() + "_ghost"
	ghost.Walk(func(g *engine.GameObject) {
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			mr.SetPreview()
		}
	})
	world.AttachVisual(ghost)
	p.ghost = ghost
}

// Destroy removes the ghost, if any. The cached surface survives so a
// respawned ghost for a new selection keeps tracking the same spot.
func (p *Preview) Destroy(world ObjectWorld) {
	if p.ghost == nil {
		return
	}
	world.Destroy(p.ghost)
	p.ghost = nil
	p.proto = nil
}

// ClearSurface drops the cached surface, used when build mode exits.
func (p *Preview) ClearSurface() {
	p.haveSurface = false
}

// Retarget computes this tick's base frame and moves the ghost to it,
// rotated by rotationDeg around the frame's own up axis. Three cases, in
// order: a direct hit caches and aligns to the surface; no hit this tick
// reuses the cached surface so the ghost does not jump when the pointer
// briefly leaves all geometry; with nothing ever cached the ghost sits a
// fixed distance along the camera forward axis, grid-snapped per axis.
func (p *Preview) Retarget(hit engine.RaycastHit, hitOK bool, camPos, camForward rl.Vector3, rotationDeg, surfaceOffset, fallbackDistance, gridInterval float32) {
	if p.ghost == nil {
		return
	}

	var frame Frame
	switch {
	case hitOK:
		p.surfacePoint = hit.Point
		p.surfaceNormal = hit.Normal
		p.haveSurface = true
		frame = AlignToSurface(hit.Point, hit.Normal, surfaceOffset)
	case p.haveSurface:
		frame = AlignToSurface(p.surfacePoint, p.surfaceNormal, surfaceOffset)
	default:
		ahead := rl.Vector3Add(camPos, rl.Vector3Scale(camForward, fallbackDistance))
		frame = Frame{
			Position:    SnapVector(ahead, gridInterval),
			Orientation: rl.QuaternionIdentity(),
		}
	}

	frame.RotatedAboutUp(rotationDeg).Apply(p.ghost)
}
