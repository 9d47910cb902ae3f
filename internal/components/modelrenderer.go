package components

import (
	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a raylib model at its GameObject's world frame.
// Alpha below 1 renders the ghost/preview state.
type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Color    rl.Color
	Alpha    float32
	unloaded bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
		Alpha: 1.0,
	}
}

// SetPreview switches to the translucent, non-solid visual state.
func (m *ModelRenderer) SetPreview() {
	m.Alpha = 0.45
}

// SetSolid restores full opacity for a committed part.
func (m *ModelRenderer) SetSolid() {
	m.Alpha = 1.0
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.unloaded {
		return
	}

	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	rotMatrix := rl.QuaternionToMatrix(g.WorldOrientation())
	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.ColorAlpha(m.Color, m.Alpha))
}

// Unload frees the model. Idempotent: destruction can race the external
// garbage sweep, so a second call is a no-op.
func (m *ModelRenderer) Unload() {
	if m.unloaded {
		return
	}
	m.unloaded = true
	rl.UnloadModel(m.Model)
}
