package climb

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestSnapCardinal(t *testing.T) {
	cases := []struct {
		name string
		lean cp.Vector
		want Direction
	}{
		{"below_deadzone", cp.Vector{X: 0.2, Y: 0.1}, None},
		{"zero", cp.Vector{}, None},
		{"up", cp.Vector{X: 0.1, Y: 0.9}, Up},
		{"down", cp.Vector{X: -0.3, Y: -0.8}, Down},
		{"right", cp.Vector{X: 0.7, Y: 0.2}, Right},
		{"left", cp.Vector{X: -1, Y: 0}, Left},
		{"diagonal_tie_prefers_horizontal", cp.Vector{X: 0.6, Y: 0.6}, Right},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SnapCardinal(c.lean, 0.5); got != c.want {
				t.Fatalf("SnapCardinal(%v) = %v, want %v", c.lean, got, c.want)
			}
		})
	}
}

func TestDirectionFromVector(t *testing.T) {
	if d, err := DirectionFromVector(cp.Vector{X: 0, Y: 3}); err != nil || d != Up {
		t.Fatalf("expected up, got %v %v", d, err)
	}
	for _, v := range []cp.Vector{{}, {X: 1, Y: 1}, {X: 0.3, Y: -0.9}} {
		if _, err := DirectionFromVector(v); !errors.Is(err, ErrNotCardinal) {
			t.Fatalf("vector %v: expected ErrNotCardinal, got %v", v, err)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Cardinals {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%v: opposite is not an involution", d)
		}
		if v := d.Vector().Add(d.Opposite().Vector()); v.Length() != 0 {
			t.Fatalf("%v: vectors do not cancel", d)
		}
	}
	if None.Opposite() != None {
		t.Fatalf("none should stay none")
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Left ")
	if err != nil || d != Left {
		t.Fatalf("expected left, got %v %v", d, err)
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrNotCardinal) {
		t.Fatalf("expected ErrNotCardinal, got %v", err)
	}
}

func TestNonCardinalPanics(t *testing.T) {
	geom := DefaultGeometry
	grips := gridOf(t, geom, "##", "##")
	reg, err := NewGridIndex(geom, grips)
	if err != nil {
		t.Fatal(err)
	}
	pf := NewPathfinder(geom, reg)

	expectPanic(t, func() { geom.AdjacentInDirection(reg, grips[0], None) })
	expectPanic(t, func() { geom.PopulateFromGrip(reg, grips[0], Direction(9), Up) })
	expectPanic(t, func() { geom.PopulateFromPair(reg, grips[0], grips[1], None) })
	expectPanic(t, func() { pf.AdjacentSquare(Square{}, None) })
	expectPanic(t, func() { pf.JumpSquare(Square{}, None) })
	expectPanic(t, func() { LeadingCorner(None, SideLeft) })
}
