package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD theme - dark panel with an indigo accent
var (
	hudColorBg       = rl.NewColor(18, 18, 24, 245)
	hudColorElement  = rl.NewColor(28, 28, 38, 255)
	hudColorHover    = rl.NewColor(38, 38, 52, 255)
	hudColorAccent   = rl.NewColor(108, 99, 255, 255)
	hudColorText     = rl.NewColor(200, 200, 208, 255)
	hudColorTextHot  = rl.NewColor(255, 255, 255, 255)
	hudColorBorder   = rl.NewColor(50, 50, 65, 255)
	hudColorWarn     = rl.NewColor(255, 120, 90, 255)
	hudColorSelected = rl.NewColor(108, 99, 255, 60)
)

const (
	hudPanelX     = 10
	hudPanelY     = 10
	hudPanelW     = 230
	hudRowHeight  = 26
	hudPanelPad   = 8
	hudHeaderSize = 28
)

// HUD is the raygui build-mode overlay: the palette list plus a status line.
type HUD struct {
	names []string
}

func NewHUD(names []string) *HUD {
	initHUDStyle()
	return &HUD{names: names}
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(hudColorBg))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(hudColorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(hudColorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(hudColorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(hudColorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(hudColorTextHot))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(hudColorTextHot))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(hudColorBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(hudColorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (h *HUD) panelBounds() rl.Rectangle {
	height := float32(hudHeaderSize + len(h.names)*hudRowHeight + 2*hudPanelPad)
	return rl.Rectangle{X: hudPanelX, Y: hudPanelY, Width: hudPanelW, Height: height}
}

// PointerOver reports whether the pointer sits on a HUD panel, so the input
// loop can flag events as UI-handled. Only meaningful while the palette is
// visible.
func (h *HUD) PointerOver(mouse rl.Vector2, buildMode bool) bool {
	if !buildMode {
		return false
	}
	return rl.CheckCollisionPointRec(mouse, h.panelBounds())
}

// Draw renders the overlay. Runs outside BeginMode3D.
func (h *HUD) Draw(g *Game) {
	if g.Builder.Enabled() {
		h.drawPalette(g)
	}
	h.drawStatus(g)
}

func (h *HUD) drawPalette(g *Game) {
	bounds := h.panelBounds()
	gui.Panel(bounds, "Parts")

	y := bounds.Y + hudHeaderSize
	for i, name := range h.names {
		row := rl.Rectangle{
			X:      bounds.X + hudPanelPad,
			Y:      y + float32(i*hudRowHeight),
			Width:  bounds.Width - 2*hudPanelPad,
			Height: hudRowHeight - 4,
		}
		if i+1 == g.Builder.Selected() {
			rl.DrawRectangleRec(row, hudColorSelected)
		}
		gui.Label(row, fmt.Sprintf(" %d  %s", i+1, name))
	}
}

func (h *HUD) drawStatus(g *Game) {
	screenH := int32(rl.GetScreenHeight())
	screenW := int32(rl.GetScreenWidth())

	if g.Builder.Enabled() {
		poolSize, poolActive := g.Builder.PoolStats()
		status := fmt.Sprintf("rot %.0f°   placed %d   pool %d/%d",
			g.Builder.RotationDeg(), g.Builder.LedgerLen(), poolSize, poolActive)
		gui.StatusBar(rl.Rectangle{X: 0, Y: float32(screenH - 24), Width: float32(screenW), Height: 24}, status)

		rl.DrawText("LMB place   R rotate   Z undo   Q/E or wheel select   B exit",
			10, screenH-48, 16, hudColorText)
	} else {
		rl.DrawText("B to build", 10, screenH-28, 18, hudColorText)
	}

	if g.warning != "" {
		rl.DrawText(g.warning, 10, screenH-72, 18, hudColorWarn)
	}

	if g.Debug {
		debug := fmt.Sprintf("garbage: %d pending, %d swept",
			g.World.Garbage.Pending(), g.World.Garbage.Swept())
		rl.DrawText(debug, 10, 40, 16, rl.Green)
		rl.DrawFPS(10, 60)
	}
}
