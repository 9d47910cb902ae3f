package builder

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSnapConcreteValues(t *testing.T) {
	cases := []struct {
		value, interval, want float32
	}{
		{7.3, 2, 8},
		{6.8, 2, 6},
		{5.0, 2, 6}, // half rounds up
		{-0.6, 1, -1},
		{0.5, 1, 1},
		{0, 2, 0},
	}
	for _, c := range cases {
		if got := Snap(c.value, c.interval); got != c.want {
			t.Errorf("Snap(%f, %f) = %f, want %f", c.value, c.interval, got, c.want)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	values := []float32{7.3, 6.8, 5.0, -3.7, 0.1, 123.456}
	intervals := []float32{1, 2, 0.5, 45}
	for _, v := range values {
		for _, i := range intervals {
			once := Snap(v, i)
			if twice := Snap(once, i); twice != once {
				t.Errorf("Snap(Snap(%f, %f)) = %f, want %f", v, i, twice, once)
			}
		}
	}
}

func TestSnapVector(t *testing.T) {
	got := SnapVector(rl.Vector3{X: 7.3, Y: 6.8, Z: 5.0}, 2)
	want := rl.Vector3{X: 8, Y: 6, Z: 6}
	if got != want {
		t.Errorf("SnapVector = %v, want %v", got, want)
	}
}
