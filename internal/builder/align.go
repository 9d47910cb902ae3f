package builder

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const alignEpsilon = 1e-4

// AlignToSurface builds a frame whose up axis is the surface normal,
// offset off the surface along the normal so the object never sits
// coplanar with it.
//
// A zero normal carries no surface information; the result is an
// unrotated frame at the given point.
func AlignToSurface(point, normal rl.Vector3, offset float32) Frame {
	if rl.Vector3Length(normal) < alignEpsilon {
		return Frame{Position: point, Orientation: rl.QuaternionIdentity()}
	}

	up := rl.Vector3Normalize(normal)

	right := rl.Vector3CrossProduct(rl.Vector3{X: 1, Y: 0, Z: 0}, up)
	if rl.Vector3Length(right) < alignEpsilon {
		// Normal is parallel to world X, pick another reference axis
		right = rl.Vector3CrossProduct(rl.Vector3{X: 0, Y: 0, Z: 1}, up)
	}
	right = rl.Vector3Normalize(right)
	look := rl.Vector3Normalize(rl.Vector3CrossProduct(right, up))

	basis := rl.Matrix{
		M0: right.X, M4: up.X, M8: look.X, M12: 0,
		M1: right.Y, M5: up.Y, M9: look.Y, M13: 0,
		M2: right.Z, M6: up.Z, M10: look.Z, M14: 0,
		M3: 0, M7: 0, M11: 0, M15: 1,
	}

	return Frame{
		Position:    rl.Vector3Add(point, rl.Vector3Scale(up, offset)),
		Orientation: rl.QuaternionFromMatrix(basis),
	}
}
