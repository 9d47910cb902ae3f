package builder

import (
	"gridforge/internal/engine"
)

// Pool caches detached spare instances so repeated place/undo cycles do not
// allocate fresh objects every time. Spares are keyed by prototype name so
// an acquire never hands back a differently shaped object.
type Pool struct {
	world    ObjectWorld
	capacity int
	spares   map[string][]*engine.GameObject
	size     int
	active   int
}

func NewPool(world ObjectWorld, capacity int) *Pool {
	return &Pool{
		world:    world,
		capacity: capacity,
		spares:   make(map[string][]*engine.GameObject),
	}
}

// Acquire returns the most recently released spare for the prototype,
// attached back into the live world, or a fresh clone when none is cached.
func (p *Pool) Acquire(proto Prototype) *engine.GameObject {
	p.active++

	stack := p.spares[proto.Name()]
	if n := len(stack); n > 0 {
		obj := stack[n-1]
		p.spares[proto.Name()] = stack[:n-1]
		p.size--
		obj.Active = true
		p.world.Attach(obj)
		return obj
	}

	obj := proto.Clone()
	p.world.Attach(obj)
	return obj
}

// Release detaches the object and caches it as a spare for the prototype.
// Beyond capacity the object is destroyed outright.
func (p *Pool) Release(protoName string, obj *engine.GameObject) {
	p.active--

	if p.size >= p.capacity {
		p.world.Destroy(obj)
		return
	}
	p.world.Detach(obj)
	obj.Active = false
	p.spares[protoName] = append(p.spares[protoName], obj)
	p.size++
}

// Clear destroys every cached spare.
func (p *Pool) Clear() {
	for name, stack := range p.spares {
		for _, obj := range stack {
			p.world.Destroy(obj)
		}
		delete(p.spares, name)
	}
	p.size = 0
}

// Size is the number of cached spares across all prototypes.
func (p *Pool) Size() int {
	return p.size
}

// ActiveCount is informational bookkeeping: acquires minus releases. It is
// not authoritative over object lifetimes.
func (p *Pool) ActiveCount() int {
	return p.active
}
