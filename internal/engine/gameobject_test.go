package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Transform.Scale.X != 1 || obj.Transform.Scale.Y != 1 || obj.Transform.Scale.Z != 1 {
		t.Error("default scale should be (1,1,1)")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectTags(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"solid", "terrain"}

	if !obj.HasTag("solid") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("water") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj.AddTag("building_part")
	if !obj.HasTag("building_part") {
		t.Error("AddTag should make HasTag return true")
	}

	obj.AddTag("building_part")
	count := 0
	for _, tag := range obj.Tags {
		if tag == "building_part" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("AddTag should not duplicate tags, found %d copies", count)
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	parent.RemoveChild(child)

	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}

	if child.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectWalk(t *testing.T) {
	root := NewGameObject("Root")
	a := NewGameObject("A")
	b := NewGameObject("B")
	root.AddChild(a)
	a.AddChild(b)

	var visited []string
	root.Walk(func(g *GameObject) {
		visited = append(visited, g.Name)
	})

	if len(visited) != 3 {
		t.Fatalf("Expected 3 visited objects, got %d", len(visited))
	}
	if visited[0] != "Root" || visited[1] != "A" || visited[2] != "B" {
		t.Errorf("Walk order wrong: %v", visited)
	}
}

func TestGameObjectWorldPosition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.AddChild(child)

	pos := child.WorldPosition()
	if pos.X != 11 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("Expected world position (11,2,3), got (%v,%v,%v)", pos.X, pos.Y, pos.Z)
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op
	obj.Start()
}
