package components

import (
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func (s *SphereCollider) BoundingRadius() float32 {
	g := s.GetGameObject()
	scale := g.WorldScale()
	max := scale.X
	if scale.Y > max {
		max = scale.Y
	}
	if scale.Z > max {
		max = scale.Z
	}
	return s.Radius * max
}
