package builder

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snap rounds value to the nearest multiple of interval. Ties round toward
// +infinity because of the half-interval bias. Caller guarantees
// interval > 0.
func Snap(value, interval float32) float32 {
	return float32(math.Floor(float64((value+interval/2)/interval))) * interval
}

// SnapVector snaps each axis independently.
func SnapVector(v rl.Vector3, interval float32) rl.Vector3 {
	return rl.Vector3{
		X: Snap(v.X, interval),
		Y: Snap(v.Y, interval),
		Z: Snap(v.Z, interval),
	}
}
