package climb

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestPlanRoute(t *testing.T) {
	geom := DefaultGeometry
	grips := gridOf(t, geom,
		"####",
		"....",
		"####",
		"####",
	)
	for _, nr := range registries(t, geom, grips) {
		t.Run(nr.name, func(t *testing.T) {
			pf := NewPathfinder(geom, nr.reg)
			start := squareAt(t, geom, nr.reg, grips, 0, 0)
			goal := cp.Vector{X: 0.625, Y: 0.625}

			route, ok := PlanRoute(pf, start, goal, 200)
			if !ok {
				t.Fatalf("expected a route")
			}
			end, _ := route.End().Center(geom)
			if !approxVec(end, goal) {
				t.Fatalf("route ends at %v", end)
			}
			jumps := 0
			for i, m := range route.Moves {
				if i > 0 && !m.From.Equal(route.Moves[i-1].Target) {
					t.Fatalf("move %d does not start where move %d ended", i, i-1)
				}
				if m.ConnectingGrip() == nil {
					t.Fatalf("move %d has no connecting grip", i)
				}
				if m.JumpRequired {
					jumps++
				}
			}
			if jumps != 1 {
				t.Fatalf("expected exactly one jump over the gap, got %d", jumps)
			}
		})
	}
}

func TestPlanRouteUnreachable(t *testing.T) {
	geom := DefaultGeometry
	grips := gridOf(t, geom,
		"##......",
		"##......",
		"........",
		"........",
		"......##",
		"......##",
	)
	reg, _ := NewGridIndex(geom, grips)
	pf := NewPathfinder(geom, reg)
	start := squareAt(t, geom, reg, grips, 1.5, 0)
	if _, ok := PlanRoute(pf, start, cp.Vector{X: 0.125, Y: 1.125}, 100); ok {
		t.Fatalf("expected no route")
	}
	if r, ok := PlanRoute(pf, start, cp.Vector{X: 1.625, Y: 0.125}, 100); !ok || r.Len() != 0 {
		t.Fatalf("route to the start square should be empty, got %v %v", r, ok)
	}
}
