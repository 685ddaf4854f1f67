package climb

import "github.com/jakecoffman/cp"

// Registry answers point queries against the grips of a level.
//
// Both queries are deterministic: when several grips qualify, the one whose
// position is closest to the query point wins, and exact ties go to the lowest
// grip ID.
type Registry interface {
	// Nearest returns the grip whose footprint lies within radius of point.
	Nearest(point cp.Vector, radius float64) *Grip
	// At returns the grip whose footprint overlaps the axis-aligned box of the
	// given half extent centred on point.
	At(point cp.Vector, halfExtent float64) *Grip
}

// better reports whether candidate should replace best for a query at p.
func better(p cp.Vector, candidate, best *Grip) bool {
	if best == nil {
		return true
	}
	dc := p.DistanceSq(candidate.position)
	db := p.DistanceSq(best.position)
	if dc != db {
		return dc < db
	}
	return candidate.id < best.id
}

func duplicateOf(g Geometry, reg Registry, grip *Grip) *Grip {
	other := reg.At(grip.position, 0)
	if other == nil {
		return nil
	}
	if g.HorizontallyAligned(other, grip) && g.VerticallyAligned(other, grip) {
		return other
	}
	return nil
}
