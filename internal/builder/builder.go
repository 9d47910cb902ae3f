package builder

import (
	"fmt"
	"math"

	"gridforge/internal/components"
	"gridforge/internal/config"
	"gridforge/internal/engine"

	"github.com/rs/zerolog"
)

// Action identifies one of the engine's input-driven operations.
type Action int

const (
	ActionToggle Action = iota
	ActionCycleNext
	ActionCyclePrev
	ActionCommit
	ActionRotate
	ActionUndo
)

// InputEvent is a discrete press/release delivered by the host input loop.
// Events already consumed by the host UI arrive with HandledByUI set and
// are ignored.
type InputEvent struct {
	Action      Action
	Pressed     bool
	HandledByUI bool
}

// Deps are the external collaborators one Builder instance consumes.
type Deps struct {
	View     RayView
	Query    SpatialQuery
	World    ObjectWorld
	Garbage  DestroyScheduler
	Catalog  *Catalog
	Body     *engine.GameObject
	Settings config.Settings
	Log      zerolog.Logger
}

// Builder is the per-participant placement engine: build-mode state, the
// ghost preview, the commit gate, the ledger and the pool. One instance per
// participant, driven from the host's frame tick and input callbacks, never
// from more than one goroutine.
type Builder struct {
	deps Deps
	log  zerolog.Logger

	enabled     bool
	selected    int
	rotationDeg float32

	preview Preview
	ledger  Ledger
	pool    *Pool
	gate    Gate
	target  Targeter

	rotateHeld bool
	undoHeld   bool
	rotateGate RateLimiter
	undoGate   RateLimiter

	placedSeq int
	warnings  chan string

	// Placed fires after a successful commit, Undone after an undo.
	Placed engine.EventWithArg[*PlacedPart]
	Undone engine.EventWithArg[*PlacedPart]
}

func New(deps Deps) *Builder {
	s := deps.Settings
	return &Builder{
		deps:       deps,
		log:        deps.Log.With().Str("component", "builder").Logger(),
		selected:   1,
		pool:       NewPool(deps.World, s.PoolCapacity),
		gate:       Gate{Query: deps.Query, Radius: s.CheckRadius},
		target:     Targeter{View: deps.View, Query: deps.Query, MaxDistance: s.MaxRayDistance},
		rotateGate: NewRateLimiter(s.RotateRepeatDelay),
		undoGate:   NewRateLimiter(s.UndoRepeatDelay),
		warnings:   make(chan string, 8),
	}
}

// HandleInput processes one discrete input event. Held-state actions
// (rotate, undo) only record the key state here; the repeats fire from
// Tick, rate-limited.
func (b *Builder) HandleInput(ev InputEvent) {
	if ev.HandledByUI {
		return
	}
	switch ev.Action {
	case ActionToggle:
		if ev.Pressed {
			b.Toggle()
		}
	case ActionCycleNext:
		if ev.Pressed {
			b.Cycle(1)
		}
	case ActionCyclePrev:
		if ev.Pressed {
			b.Cycle(-1)
		}
	case ActionCommit:
		if ev.Pressed {
			b.Commit()
		}
	case ActionRotate:
		b.rotateHeld = ev.Pressed
	case ActionUndo:
		b.undoHeld = ev.Pressed
	}
}

// HandleScroll cycles the selection by the scroll direction.
func (b *Builder) HandleScroll(direction int, handledByUI bool) {
	if handledByUI || direction == 0 {
		return
	}
	if direction > 0 {
		b.Cycle(1)
	} else {
		b.Cycle(-1)
	}
}

// Tick runs once per frame. The preview frame is recomputed before any
// held-key action fires.
func (b *Builder) Tick(now float64, pointerX, pointerY float32) {
	if !b.enabled || b.preview.Ghost() == nil {
		return
	}

	hit, ok := b.target.Target(pointerX, pointerY, b.preview.Ghost(), b.deps.Body)
	camPos, camForward := b.deps.View.CameraFrame()
	s := b.deps.Settings
	b.preview.Retarget(hit, ok, camPos, camForward,
		b.rotationDeg, s.SurfaceOffset, s.FallbackDistance, s.GridInterval)

	if b.rotateHeld && b.rotateGate.Try(now) {
		b.Rotate(1)
	}
	if b.undoHeld && b.undoGate.Try(now) {
		b.Undo()
	}
}

// Toggle enters or leaves build mode. Entering spawns a ghost for the
// current selection; leaving destroys it and forgets the cached surface.
// No-op on an empty catalog.
func (b *Builder) Toggle() {
	if b.deps.Catalog.Len() == 0 {
		return
	}
	if b.enabled {
		b.preview.Destroy(b.deps.World)
		b.preview.ClearSurface()
		b.enabled = false
		b.log.Debug().Msg("build mode off")
		return
	}
	b.enabled = true
	b.preview.Spawn(b.deps.Catalog.Get(b.selected), b.deps.World)
	b.log.Debug().Str("proto", b.SelectedName()).Msg("build mode on")
}

// Cycle moves the selection by direction with wraparound and respawns the
// ghost when build mode is active. No-op on an empty catalog.
func (b *Builder) Cycle(direction int) {
	count := b.deps.Catalog.Len()
	if count == 0 {
		return
	}
	b.selected = CycleIndex(b.selected, direction, count)
	if b.enabled && b.preview.Ghost() != nil {
		b.preview.Spawn(b.deps.Catalog.Get(b.selected), b.deps.World)
	}
}

// Rotate steps the build-mode rotation, wrapped to [0,360).
func (b *Builder) Rotate(direction int) {
	deg := float64(b.rotationDeg) + float64(b.deps.Settings.RotationStep)*float64(direction)
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	b.rotationDeg = float32(deg)
}

// Commit turns the ghost's current frame into a solid placed part. On a
// gate collision nothing changes and a warning is emitted instead.
func (b *Builder) Commit() {
	ghost := b.preview.Ghost()
	if ghost == nil {
		return
	}
	frame := FrameOf(ghost)
	proto := b.preview.Proto()

	blocked := b.gate.Blocked(frame.Position, func(obj *engine.GameObject) bool {
		return obj == ghost || obj == b.deps.Body
	})
	if blocked {
		b.warn(fmt.Sprintf("cannot place %s: blocked by existing part", proto.Name()))
		return
	}

	obj := b.pool.Acquire(proto)
	b.placedSeq++
	obj.Name = fmt.Sprintf("%s_%d", proto.Name(), b.placedSeq)

	obj.Walk(func(g *engine.GameObject) {
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			mr.SetSolid()
		}
	})
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil {
		rb = components.NewRigidbody()
		obj.AddComponent(rb)
	}
	rb.Anchored = false
	rb.IsKinematic = false
	rb.UseGravity = true
	rb.ResetMotion()
	obj.AddTag(TagPlaced)

	frame.Apply(obj)

	rec := b.ledger.Append(obj, proto.Name(), frame, b.rotationDeg)
	b.deps.Garbage.ScheduleDestroy(obj, b.deps.Settings.PartLifetime)
	b.Placed.Invoke(rec)
	b.log.Debug().Str("part", obj.Name).Float32("rotation", rec.RotationDeg).Msg("placed")
}

// Undo destroys the most recent placement. The object goes back to the
// pool when it is still alive; an object the external garbage sweep
// already destroyed is treated as done.
func (b *Builder) Undo() {
	rec, ok := b.ledger.Undo(func(p *PlacedPart) {
		if p.Object == nil || !b.deps.World.Contains(p.Object) {
			return
		}
		b.pool.Release(p.Proto, p.Object)
	})
	if !ok {
		return
	}
	b.Undone.Invoke(rec)
	b.log.Debug().Str("part", rec.Object.Name).Msg("undone")
}

// Teardown is the participant-disconnect path: ghost gone, pool cleared,
// every ledger entry destroyed.
func (b *Builder) Teardown() {
	b.preview.Destroy(b.deps.World)
	b.preview.ClearSurface()
	b.enabled = false
	b.pool.Clear()
	b.ledger.Clear(func(p *PlacedPart) {
		if p.Object == nil || !b.deps.World.Contains(p.Object) {
			return
		}
		b.deps.World.Destroy(p.Object)
	})
	b.log.Debug().Msg("teardown complete")
}

func (b *Builder) warn(msg string) {
	b.log.Warn().Msg(msg)
	select {
	case b.warnings <- msg:
	default:
	}
}

// Warnings is the non-blocking commit-rejection channel.
func (b *Builder) Warnings() <-chan string {
	return b.warnings
}

func (b *Builder) Enabled() bool        { return b.enabled }
func (b *Builder) Selected() int        { return b.selected }
func (b *Builder) RotationDeg() float32 { return b.rotationDeg }
func (b *Builder) LedgerLen() int       { return b.ledger.Len() }

func (b *Builder) Ghost() *engine.GameObject { return b.preview.Ghost() }
func (b *Builder) PoolStats() (size, active int) {
	return b.pool.Size(), b.pool.ActiveCount()
}

// SelectedName returns the current selection's prototype name, or "" on an
// empty catalog.
func (b *Builder) SelectedName() string {
	if b.deps.Catalog.Len() == 0 {
		return ""
	}
	return b.deps.Catalog.Get(b.selected).Name()
}
