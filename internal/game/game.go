package game

import (
	"fmt"

	"gridforge/internal/builder"
	"gridforge/internal/components"
	"gridforge/internal/config"
	"gridforge/internal/engine"
	"gridforge/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type Game struct {
	World   *world.World
	Player  *engine.GameObject
	Builder *builder.Builder
	Debug   bool

	settings config.Settings
	log      zerolog.Logger
	hud      *HUD

	warning      string
	warningUntil float64
}

func New(settings config.Settings, log zerolog.Logger) *Game {
	return &Game{
		World:    world.New(log),
		Debug:    settings.Debug,
		settings: settings,
		log:      log.With().Str("component", "game").Logger(),
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.settings.WindowWidth, g.settings.WindowHeight, g.settings.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.settings.TargetFPS)
	rl.DisableCursor()

	// World content needs the OpenGL context
	g.createTerrain()
	g.createPlayer()
	defer g.World.Unload()

	catalog := builder.NewCatalog(DefaultParts()...)
	g.Builder = builder.New(builder.Deps{
		View:     &PlayerView{Player: g.Player},
		Query:    g.World.Physics,
		World:    g.World,
		Garbage:  g.World.Garbage,
		Catalog:  catalog,
		Body:     g.Player,
		Settings: g.settings,
		Log:      g.log,
	})
	defer g.Builder.Teardown()

	g.hud = NewHUD(catalog.Names())
	g.log.Info().Int("parts", catalog.Len()).Msg("running")

	for !rl.WindowShouldClose() {
		g.update()
		g.draw()
	}
}

func (g *Game) createPlayer() {
	g.Player = engine.NewGameObject("player")
	g.Player.Transform.Position = rl.Vector3{X: 10, Y: 2, Z: 10}

	fps := components.NewFPSController()
	g.Player.AddComponent(fps)
	g.Player.AddComponent(components.NewCamera())
	g.Player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6}))

	// Kinematic so the builder's gate and ray can exclude a real body
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	rb.UseGravity = false // FPSController handles gravity
	g.Player.AddComponent(rb)

	g.World.Attach(g.Player)
	g.Player.Start()
}

func (g *Game) createTerrain() {
	floor := engine.NewGameObject("floor")
	floor.Transform.Position = rl.Vector3{X: 0, Y: -0.25, Z: 0}
	floorSize := rl.Vector3{X: 80, Y: 0.5, Z: 80}
	floor.AddComponent(components.NewModelRenderer(
		rl.LoadModelFromMesh(rl.GenMeshCube(floorSize.X, floorSize.Y, floorSize.Z)),
		rl.NewColor(60, 90, 60, 255)))
	floor.AddComponent(components.NewBoxCollider(floorSize))
	g.anchor(floor)
	g.World.Attach(floor)
	floor.Start()

	// A few solid obstacles so surface alignment has walls to track
	obstacles := []struct {
		pos  rl.Vector3
		size rl.Vector3
	}{
		{rl.Vector3{X: -6, Y: 1.5, Z: -4}, rl.Vector3{X: 3, Y: 3, Z: 3}},
		{rl.Vector3{X: 5, Y: 1, Z: -8}, rl.Vector3{X: 2, Y: 2, Z: 2}},
		{rl.Vector3{X: 0, Y: 2.5, Z: -14}, rl.Vector3{X: 8, Y: 5, Z: 1}},
	}
	for i, o := range obstacles {
		obj := engine.NewGameObject(fmt.Sprintf("obstacle_%d", i))
		obj.Transform.Position = o.pos
		obj.AddComponent(components.NewModelRenderer(
			rl.LoadModelFromMesh(rl.GenMeshCube(o.size.X, o.size.Y, o.size.Z)),
			rl.NewColor(110, 110, 120, 255)))
		obj.AddComponent(components.NewBoxCollider(o.size))
		g.anchor(obj)
		g.World.Attach(obj)
		obj.Start()
	}

	// Water patch: solid to the eye, invisible to the targeting ray
	pond := engine.NewGameObject("pond")
	pond.Transform.Position = rl.Vector3{X: 18, Y: -0.1, Z: 18}
	pondSize := rl.Vector3{X: 10, Y: 0.2, Z: 10}
	pond.AddComponent(components.NewModelRenderer(
		rl.LoadModelFromMesh(rl.GenMeshCube(pondSize.X, pondSize.Y, pondSize.Z)),
		rl.NewColor(50, 110, 190, 200)))
	pond.AddComponent(components.NewBoxCollider(pondSize))
	pond.AddTag(builder.TagWater)
	g.anchor(pond)
	g.World.Attach(pond)
	pond.Start()
}

func (g *Game) anchor(obj *engine.GameObject) {
	rb := components.NewRigidbody()
	rb.Anchored = true
	rb.UseGravity = false
	obj.AddComponent(rb)
}

func (g *Game) update() {
	deltaTime := rl.GetFrameTime()
	now := rl.GetTime()
	mouse := rl.GetMousePosition()
	overUI := g.hud.PointerOver(mouse, g.Builder.Enabled())

	// Input events for this frame are fully processed before the tick
	g.dispatchInput(overUI)

	g.Player.Update(deltaTime)
	g.groundClamp()

	g.Builder.Tick(now, mouse.X, mouse.Y)
	g.World.Update(deltaTime, now)

	select {
	case msg := <-g.Builder.Warnings():
		g.warning = msg
		g.warningUntil = now + 3
	default:
	}
	if g.warning != "" && now > g.warningUntil {
		g.warning = ""
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.Debug = !g.Debug
	}
}

func (g *Game) dispatchInput(overUI bool) {
	b := g.Builder

	if rl.IsKeyPressed(rl.KeyB) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionToggle, Pressed: true, HandledByUI: overUI})
	}
	if rl.IsKeyPressed(rl.KeyE) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionCycleNext, Pressed: true, HandledByUI: overUI})
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionCyclePrev, Pressed: true, HandledByUI: overUI})
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionCommit, Pressed: true, HandledByUI: overUI})
	}

	if rl.IsKeyPressed(rl.KeyR) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionRotate, Pressed: true, HandledByUI: overUI})
	}
	if rl.IsKeyReleased(rl.KeyR) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionRotate, Pressed: false})
	}
	if rl.IsKeyPressed(rl.KeyZ) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionUndo, Pressed: true, HandledByUI: overUI})
	}
	if rl.IsKeyReleased(rl.KeyZ) {
		b.HandleInput(builder.InputEvent{Action: builder.ActionUndo, Pressed: false})
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		dir := 1
		if wheel < 0 {
			dir = -1
		}
		b.HandleScroll(dir, overUI)
	}
}

// groundClamp keeps the player's feet on the floor plane.
func (g *Game) groundClamp() {
	fps := engine.GetComponent[*components.FPSController](g.Player)
	if fps == nil {
		return
	}
	if g.Player.Transform.Position.Y <= 0 {
		g.Player.Transform.Position.Y = 0
		fps.Velocity.Y = 0
		fps.Grounded = true
	} else {
		fps.Grounded = false
	}
}

func (g *Game) draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	rl.DrawGrid(40, g.settings.GridInterval)
	g.World.Draw()
	g.drawGhostAccent()
	rl.EndMode3D()

	g.hud.Draw(g)
	rl.EndDrawing()
}

// drawGhostAccent outlines the ghost so it reads as a preview even against
// same-colored parts.
func (g *Game) drawGhostAccent() {
	ghost := g.Builder.Ghost()
	if ghost == nil {
		return
	}
	box := engine.GetComponent[*components.BoxCollider](ghost)
	if box == nil {
		return
	}
	rl.DrawCubeWiresV(ghost.WorldPosition(), box.GetWorldSize(), hudColorAccent)
}
