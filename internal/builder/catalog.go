package builder

import (
	"sort"
)

// Catalog is the ordered set of placeable prototypes, deduplicated by name
// and sorted lexicographically. Loaded once at startup, never mutated.
type Catalog struct {
	protos []Prototype
}

func NewCatalog(protos ...Prototype) *Catalog {
	seen := make(map[string]bool, len(protos))
	kept := make([]Prototype, 0, len(protos))
	for _, p := range protos {
		if seen[p.Name()] {
			continue
		}
		seen[p.Name()] = true
		kept = append(kept, p)
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Name() < kept[j].Name()
	})
	return &Catalog{protos: kept}
}

func (c *Catalog) Len() int {
	return len(c.protos)
}

// Get returns the prototype at the 1-based index.
func (c *Catalog) Get(index int) Prototype {
	return c.protos[index-1]
}

// Names returns the catalog order, for UI listing.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.protos))
	for i, p := range c.protos {
		names[i] = p.Name()
	}
	return names
}

// CycleIndex moves a 1-based index by direction with wraparound over count.
func CycleIndex(index, direction, count int) int {
	i := (index - 1 + direction) % count
	if i < 0 {
		i += count
	}
	return i + 1
}
