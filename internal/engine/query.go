package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastHit holds information about a raycast hit.
// Defined here so both the physics backend and its consumers can share it
// without a circular import.
type RaycastHit struct {
	Object   *GameObject
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}
