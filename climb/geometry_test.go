package climb

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestAlignmentOfColocatedGrips(t *testing.T) {
	geom := DefaultGeometry
	for _, p := range [][2]float64{{0, 0}, {1.25, -0.5}, {0.013, 0.007}} {
		a := gripAt(t, 1, p[0], p[1])
		b := gripAt(t, 2, p[0], p[1])
		if !geom.HorizontallyAligned(a, b) || !geom.VerticallyAligned(a, b) {
			t.Fatalf("grips at %v should be aligned on both axes", p)
		}
	}
}

func TestInSameCell(t *testing.T) {
	geom := DefaultGeometry
	cases := []struct {
		name   string
		bx, by float64
		want   bool
	}{
		{"same_position", 0, 0, true},
		{"one_step_right", 0.25, 0, true},
		{"one_step_down", 0, -0.25, true},
		{"diagonal", 0.25, 0.25, true},
		{"jittered_step", 0.26, 0.01, true},
		{"two_steps_right", 0.5, 0, false},
		{"two_steps_up", 0, 0.5, false},
		{"knight", 0.25, 0.5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := gripAt(t, 1, 0, 0)
			b := gripAt(t, 2, c.bx, c.by)
			if got := geom.InSameCell(a, b); got != c.want {
				t.Fatalf("InSameCell = %v, want %v", got, c.want)
			}
			if geom.InSameCell(b, a) != geom.InSameCell(a, b) {
				t.Fatalf("InSameCell is not symmetric")
			}
		})
	}
}

func TestGeometryValidate(t *testing.T) {
	if err := DefaultGeometry.Validate(); err != nil {
		t.Fatalf("default geometry: %v", err)
	}
	for _, g := range []Geometry{{0, 0.1}, {1, 0}, {0.25, 0.2}} {
		if err := g.Validate(); !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("%+v: expected ErrInvalidGeometry, got %v", g, err)
		}
	}
}

func TestNewGripRejectsQuality(t *testing.T) {
	for _, q := range []int{0, 11, -3} {
		if _, err := NewGrip(1, cp.Vector{}, q, GripPeg); !errors.Is(err, ErrInvalidQuality) {
			t.Fatalf("quality %d: expected ErrInvalidQuality, got %v", q, err)
		}
	}
}
