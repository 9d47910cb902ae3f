package builder

import (
	"testing"
)

func TestCatalogSortsAndDedupes(t *testing.T) {
	c := NewCatalog(
		&fakeProto{name: "wall"},
		&fakeProto{name: "arch"},
		&fakeProto{name: "block"},
		&fakeProto{name: "arch"}, // duplicate dropped
	)
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
	want := []string{"arch", "block", "wall"}
	for i, name := range c.Names() {
		if name != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, name, want[i])
		}
	}
	if c.Get(1).Name() != "arch" || c.Get(3).Name() != "wall" {
		t.Error("Get uses 1-based indexing over the sorted order")
	}
}

func TestCycleIndex(t *testing.T) {
	cases := []struct {
		index, direction, count, want int
	}{
		{1, -1, 3, 3},
		{3, 1, 3, 1},
		{2, 1, 3, 3},
		{2, -1, 3, 1},
		{1, 1, 1, 1},
		{1, -1, 1, 1},
	}
	for _, c := range cases {
		if got := CycleIndex(c.index, c.direction, c.count); got != c.want {
			t.Errorf("CycleIndex(%d, %d, %d) = %d, want %d",
				c.index, c.direction, c.count, got, c.want)
		}
	}
}
