package climb

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func gripAt(t *testing.T, id int, x, y float64) *Grip {
	t.Helper()
	g, err := NewGrip(id, cp.Vector{X: x, Y: y}, 5, GripSquare)
	if err != nil {
		t.Fatalf("NewGrip: %v", err)
	}
	return g
}

// gridOf builds grips from rows listed top to bottom; '#' is a grip and the
// bottom-left character sits at the origin.
func gridOf(t *testing.T, geom Geometry, rows ...string) []*Grip {
	t.Helper()
	var grips []*Grip
	id := 1
	for i, row := range rows {
		y := float64(len(rows)-1-i) * geom.Spacing
		for col, ch := range row {
			if ch != '#' {
				continue
			}
			grips = append(grips, gripAt(t, id, float64(col)*geom.Spacing, y))
			id++
		}
	}
	return grips
}

type namedRegistry struct {
	name string
	reg  Registry
}

func registries(t *testing.T, geom Geometry, grips []*Grip) []namedRegistry {
	t.Helper()
	grid, err := NewGridIndex(geom, grips)
	if err != nil {
		t.Fatalf("NewGridIndex: %v", err)
	}
	space, err := NewSpaceIndex(geom, grips)
	if err != nil {
		t.Fatalf("NewSpaceIndex: %v", err)
	}
	return []namedRegistry{{"grid", grid}, {"space", space}}
}

func findGrip(grips []*Grip, x, y float64) *Grip {
	for _, g := range grips {
		if approx(g.Position().X, x) && approx(g.Position().Y, y) {
			return g
		}
	}
	return nil
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b cp.Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
