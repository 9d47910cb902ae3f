package builder

import (
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is a world-space position plus orientation.
type Frame struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
}

// Up returns the frame's own up axis.
func (f Frame) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 0, Y: 1, Z: 0}, f.Orientation)
}

// RotatedAboutUp returns the frame rotated by deg degrees around its own
// up axis. The position is unchanged.
func (f Frame) RotatedAboutUp(deg float32) Frame {
	if deg == 0 {
		return f
	}
	spin := rl.QuaternionFromAxisAngle(f.Up(), deg*rl.Deg2rad)
	return Frame{
		Position:    f.Position,
		Orientation: rl.QuaternionMultiply(spin, f.Orientation),
	}
}

// Apply moves the object to the frame directly, without physics.
func (f Frame) Apply(g *engine.GameObject) {
	g.Transform.Position = f.Position
	g.Transform.Orientation = f.Orientation
}

// FrameOf reads an object's current world frame.
func FrameOf(g *engine.GameObject) Frame {
	return Frame{
		Position:    g.Transform.Position,
		Orientation: g.Transform.Orientation,
	}
}
