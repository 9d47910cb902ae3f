package game

import (
	"gridforge/internal/components"
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerView adapts the player's camera to the ray interface the placement
// engine consumes.
type PlayerView struct {
	Player *engine.GameObject
}

func (v *PlayerView) camera() rl.Camera3D {
	cam := engine.GetComponent[*components.Camera](v.Player)
	if cam == nil {
		return rl.Camera3D{}
	}
	return cam.GetRaylibCamera()
}

func (v *PlayerView) ScreenPointToRay(x, y float32) (rl.Vector3, rl.Vector3) {
	ray := rl.GetScreenToWorldRay(rl.Vector2{X: x, Y: y}, v.camera())
	return ray.Position, ray.Direction
}

func (v *PlayerView) CameraFrame() (rl.Vector3, rl.Vector3) {
	cam := v.camera()
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	return cam.Position, forward
}
