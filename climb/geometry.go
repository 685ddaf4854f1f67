// Package climb implements the climbing grid: handholds on an implicit 2D
// grid, the 2x2 squares a climber occupies, the adjacency and bounded jump
// searches between squares, and the tick-driven movement controller.
package climb

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Geometry holds the level-wide grid constants. Spacing is the distance between
// neighbouring handholds, HalfWidth is half a handhold's footprint and doubles
// as the tolerance for alignment tests and point lookups.
type Geometry struct {
	Spacing   float64
	HalfWidth float64
}

var DefaultGeometry = Geometry{Spacing: 0.25, HalfWidth: 0.025}

func (g Geometry) Validate() error {
	if g.Spacing <= 0 || g.HalfWidth <= 0 {
		return fmt.Errorf("climb: spacing %g half width %g: %w", g.Spacing, g.HalfWidth, ErrInvalidGeometry)
	}
	if g.HalfWidth*2 >= g.Spacing {
		return fmt.Errorf("climb: footprint %g overlaps spacing %g: %w", g.HalfWidth*2, g.Spacing, ErrInvalidGeometry)
	}
	return nil
}

func (g Geometry) HorizontallyAligned(a, b *Grip) bool {
	return math.Abs(a.position.Y-b.position.Y) < g.HalfWidth
}

func (g Geometry) VerticallyAligned(a, b *Grip) bool {
	return math.Abs(a.position.X-b.position.X) < g.HalfWidth
}

// InSameCell reports whether a and b can share one square: on each axis they
// are either co-located or exactly one grid step apart.
func (g Geometry) InSameCell(a, b *Grip) bool {
	dx := a.position.X - b.position.X
	dy := a.position.Y - b.position.Y
	return g.withinCellBand(dx) && g.withinCellBand(dy)
}

func (g Geometry) withinCellBand(diff float64) bool {
	d := math.Abs(diff)
	if d > g.HalfWidth {
		return d < g.Spacing+g.HalfWidth
	}
	return true
}

// AdjacentInDirection returns the grip exactly one grid step from grip in d.
func (g Geometry) AdjacentInDirection(reg Registry, grip *Grip, d Direction) *Grip {
	mustCardinal(d)
	if grip == nil {
		return nil
	}
	return reg.At(grip.position.Add(d.Vector().Mult(g.Spacing)), g.HalfWidth)
}

// Cell returns the integer grid coordinate nearest to p.
func (g Geometry) Cell(p cp.Vector) (col, row int) {
	return int(math.Round(p.X / g.Spacing)), int(math.Round(p.Y / g.Spacing))
}

// OnGrid reports whether p lies on a grid node within the handhold tolerance.
func (g Geometry) OnGrid(p cp.Vector) bool {
	col, row := g.Cell(p)
	return math.Abs(p.X-float64(col)*g.Spacing) < g.HalfWidth &&
		math.Abs(p.Y-float64(row)*g.Spacing) < g.HalfWidth
}

// footprintDistance is the distance from p to the handhold's square footprint,
// zero when p is inside it.
func (g Geometry) footprintDistance(p cp.Vector, grip *Grip) float64 {
	dx := math.Max(math.Abs(p.X-grip.position.X)-g.HalfWidth, 0)
	dy := math.Max(math.Abs(p.Y-grip.position.Y)-g.HalfWidth, 0)
	return math.Hypot(dx, dy)
}
