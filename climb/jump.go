package climb

import "github.com/jakecoffman/cp"

type scanHit struct {
	grip  *Grip
	steps int
}

// JumpSquare searches past the adjacent square for a reachable square in d.
// Both leading-edge lines are scanned one grid step at a time. When the two
// hits can share a square with at least MinimumGrips grips that square is
// returned with the number of steps taken; otherwise the side whose hit is
// nearer the current center keeps scanning from its hit. The search is greedy
// and may miss squares an exhaustive search would find.
func (p *Pathfinder) JumpSquare(current Square, d Direction) (Square, int) {
	mustCardinal(d)
	center, ok := current.Center(p.Geometry)
	if !ok {
		return Square{}, 0
	}
	budget := p.maxJumpSpaces()
	leftFrom, _ := current.CornerPosition(LeadingCorner(d, SideLeft), p.Geometry)
	rightFrom, _ := current.CornerPosition(LeadingCorner(d, SideRight), p.Geometry)

	left := p.scan(leftFrom, d, 0, budget)
	right := p.scan(rightFrom, d, 0, budget)
	for left.grip != nil && right.grip != nil {
		if p.Geometry.InSameCell(left.grip, right.grip) {
			sq := p.Geometry.PopulateFromPair(p.Registry, left.grip, right.grip, d)
			if sq.Count() >= p.minimumGrips() {
				return sq, max(left.steps, right.steps)
			}
		}
		if left.grip.position.Distance(center) <= right.grip.position.Distance(center) {
			left = p.scan(left.grip.position, d, left.steps, budget)
		} else {
			right = p.scan(right.grip.position, d, right.steps, budget)
		}
	}
	return Square{}, 0
}

// scan walks from a point in d until a grip is within HalfWidth of a grid
// step or the step budget runs out.
func (p *Pathfinder) scan(from cp.Vector, d Direction, used, budget int) scanHit {
	step := d.Vector().Mult(p.Geometry.Spacing)
	for i := 1; used+i < budget; i++ {
		if g := p.Registry.Nearest(from.Add(step.Mult(float64(i))), p.Geometry.HalfWidth); g != nil {
			return scanHit{grip: g, steps: used + i}
		}
	}
	return scanHit{steps: budget}
}
