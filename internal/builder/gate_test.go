package builder

import (
	"testing"

	"gridforge/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func tagged(name string) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.AddTag(TagPlaced)
	return obj
}

func TestGateEmptyQuery(t *testing.T) {
	g := Gate{Query: &fakeQuery{}, Radius: 1.5}
	if g.Blocked(rl.Vector3{}, nil) {
		t.Error("empty radius query must not block")
	}
}

func TestGateSingleTaggedObject(t *testing.T) {
	q := &fakeQuery{nearby: []*engine.GameObject{tagged("part")}}
	g := Gate{Query: q, Radius: 1.5}
	if !g.Blocked(rl.Vector3{}, nil) {
		t.Error("one tagged object within radius must block")
	}
}

func TestGateManyTaggedObjects(t *testing.T) {
	q := &fakeQuery{nearby: []*engine.GameObject{
		tagged("p1"), tagged("p2"), tagged("p3"),
	}}
	g := Gate{Query: q, Radius: 1.5}
	if !g.Blocked(rl.Vector3{}, nil) {
		t.Error("several tagged objects must block")
	}
}

func TestGateUntaggedDecoys(t *testing.T) {
	q := &fakeQuery{nearby: []*engine.GameObject{
		engine.NewGameObject("tree"),
		engine.NewGameObject("rock"),
	}}
	g := Gate{Query: q, Radius: 1.5}
	if g.Blocked(rl.Vector3{}, nil) {
		t.Error("untagged neighbors must not block")
	}
}

func TestGateMixedNeighbors(t *testing.T) {
	q := &fakeQuery{nearby: []*engine.GameObject{
		engine.NewGameObject("tree"),
		tagged("part"),
	}}
	g := Gate{Query: q, Radius: 1.5}
	if !g.Blocked(rl.Vector3{}, nil) {
		t.Error("a tagged object among decoys must block")
	}
}

func TestGateHonorsExclude(t *testing.T) {
	self := tagged("self")
	q := &fakeQuery{nearby: []*engine.GameObject{self}}
	g := Gate{Query: q, Radius: 1.5}
	blocked := g.Blocked(rl.Vector3{}, func(obj *engine.GameObject) bool {
		return obj == self
	})
	if blocked {
		t.Error("excluded object must not block")
	}
}
