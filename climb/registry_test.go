package climb

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRegistryQueries(t *testing.T) {
	geom := DefaultGeometry
	grips := []*Grip{
		gripAt(t, 3, 0, 0),
		gripAt(t, 1, 0.25, 0),
		gripAt(t, 2, 0, 0.25),
	}

	cases := []struct {
		name   string
		query  func(Registry) *Grip
		wantID int // 0 = none
	}{
		{"at_exact", func(r Registry) *Grip { return r.At(cp.Vector{X: 0.25, Y: 0}, geom.HalfWidth) }, 1},
		{"at_within_tolerance", func(r Registry) *Grip { return r.At(cp.Vector{X: 0.02, Y: 0.27}, geom.HalfWidth) }, 2},
		{"at_outside_tolerance", func(r Registry) *Grip { return r.At(cp.Vector{X: 0.125, Y: 0}, geom.HalfWidth) }, 0},
		{"at_zero_extent", func(r Registry) *Grip { return r.At(cp.Vector{X: 0.01, Y: 0}, 0) }, 3},
		{"nearest_inside_radius", func(r Registry) *Grip { return r.Nearest(cp.Vector{X: 0.04, Y: 0}, geom.HalfWidth) }, 3},
		{"nearest_outside_radius", func(r Registry) *Grip { return r.Nearest(cp.Vector{X: 0.06, Y: 0}, geom.HalfWidth) }, 0},
		{"nearest_prefers_closer", func(r Registry) *Grip { return r.Nearest(cp.Vector{X: 0.05, Y: 0.2}, 0.3) }, 2},
		{"nearest_tie_lowest_id", func(r Registry) *Grip { return r.Nearest(cp.Vector{X: 0.125, Y: 0}, 0.2) }, 1},
		{"nearest_empty_area", func(r Registry) *Grip { return r.Nearest(cp.Vector{X: 3, Y: 3}, 0.5) }, 0},
	}

	for _, nr := range registries(t, geom, grips) {
		for _, c := range cases {
			t.Run(nr.name+"/"+c.name, func(t *testing.T) {
				got := c.query(nr.reg)
				switch {
				case c.wantID == 0 && got != nil:
					t.Fatalf("expected no grip, got %v", got)
				case c.wantID != 0 && got == nil:
					t.Fatalf("expected grip %d, got none", c.wantID)
				case c.wantID != 0 && got.ID() != c.wantID:
					t.Fatalf("expected grip %d, got %v", c.wantID, got)
				}
			})
		}
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	geom := DefaultGeometry
	grips := []*Grip{gripAt(t, 1, 0.5, 0.5), gripAt(t, 2, 0.51, 0.49)}
	if _, err := NewGridIndex(geom, grips); !errors.Is(err, ErrDuplicateGrip) {
		t.Fatalf("grid index: expected ErrDuplicateGrip, got %v", err)
	}
	if _, err := NewSpaceIndex(geom, grips); !errors.Is(err, ErrDuplicateGrip) {
		t.Fatalf("space index: expected ErrDuplicateGrip, got %v", err)
	}
}

func TestRegistryGripsOrderedByID(t *testing.T) {
	geom := DefaultGeometry
	grips := []*Grip{gripAt(t, 5, 0, 0), gripAt(t, 2, 0.25, 0), gripAt(t, 9, 0.5, 0)}
	grid, err := NewGridIndex(geom, grips)
	if err != nil {
		t.Fatal(err)
	}
	space, err := NewSpaceIndex(geom, grips)
	if err != nil {
		t.Fatal(err)
	}
	for _, got := range [][]*Grip{grid.Grips(), space.Grips()} {
		if len(got) != 3 || got[0].ID() != 2 || got[1].ID() != 5 || got[2].ID() != 9 {
			t.Fatalf("unexpected order %v", got)
		}
	}
}
