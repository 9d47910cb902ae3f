package components

import (
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Mass            float32
	UseGravity      bool
	IsKinematic     bool // moves but is not integrated by physics
	Anchored        bool // pinned in place, never integrated
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:        rl.Vector3{},
		AngularVelocity: rl.Vector3{},
		Mass:            1.0,
		UseGravity:      true,
		IsKinematic:     false,
		Anchored:        false,
	}
}

// ResetMotion zeroes linear and angular velocity, used when a part is
// committed so it starts at rest in its placement frame.
func (r *Rigidbody) ResetMotion() {
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
}
