package climb

import (
	"math"

	"github.com/jakecoffman/cp"
)

// PopulateFromGrip builds the square that has start as one corner and extends
// h horizontally and v vertically from it. h must be Left or Right and v must
// be Up or Down; otherwise the empty square is returned. The other three
// corners are filled by exact-offset lookups and stay nil when vacant.
func (g Geometry) PopulateFromGrip(reg Registry, start *Grip, h, v Direction) Square {
	mustCardinal(h)
	mustCardinal(v)
	if start == nil || !h.Horizontal() || !v.Vertical() {
		return Square{}
	}

	hOff := h.Vector().Mult(g.Spacing)
	vOff := v.Vector().Mult(g.Spacing)
	pos := start.position

	startRight := h == Left
	startUp := v == Down

	var sq Square
	sq.grips[cornerAt(startRight, startUp)] = start
	sq.grips[cornerAt(!startRight, startUp)] = reg.At(pos.Add(hOff), g.HalfWidth)
	sq.grips[cornerAt(startRight, !startUp)] = reg.At(pos.Add(vOff), g.HalfWidth)
	sq.grips[cornerAt(!startRight, !startUp)] = reg.At(pos.Add(hOff).Add(vOff), g.HalfWidth)
	return sq
}

// PopulateFromPair builds the square containing two grips found while
// travelling in d. The grip further along d sits on the leading edge; a pair
// with no spread across the travel axis is placed on the left-hand side.
// Vacant corners are filled from a held neighbour one grid step away.
func (g Geometry) PopulateFromPair(reg Registry, a, b *Grip, d Direction) Square {
	mustCardinal(d)
	if a == nil || b == nil || a == b || !g.InSameCell(a, b) {
		return Square{}
	}
	if g.HorizontallyAligned(a, b) && g.VerticallyAligned(a, b) {
		return Square{}
	}

	lead := math.Max(along(d, a.position), along(d, b.position))
	spread := math.Abs(across(d, a.position) - across(d, b.position))

	place := func(grip, other *Grip) Corner {
		side := SideLeft
		if spread >= g.HalfWidth && across(d, grip.position) > across(d, other.position) {
			side = SideRight
		}
		if along(d, grip.position) > lead-g.HalfWidth {
			return LeadingCorner(d, side)
		}
		return TrailingCorner(d, side)
	}

	var sq Square
	sq.grips[place(a, b)] = a
	sq.grips[place(b, a)] = b

	held := sq
	for _, c := range Corners {
		if held.grips[c] != nil {
			continue
		}
		from, ok := fillSource(held, c, d)
		if !ok {
			continue
		}
		sq.grips[c] = g.AdjacentInDirection(reg, held.grips[from], from.directionTo(c))
	}
	return sq
}

// fillSource picks the held corner next to c, preferring the neighbour across
// the travel axis over the one on the same edge.
func fillSource(sq Square, c Corner, d Direction) (Corner, bool) {
	acrossTravel := cornerAt(c.Right(), !c.Up())
	sameEdge := cornerAt(!c.Right(), c.Up())
	if d.Horizontal() {
		acrossTravel, sameEdge = sameEdge, acrossTravel
	}
	for _, n := range [2]Corner{acrossTravel, sameEdge} {
		if sq.grips[n] != nil {
			return n, true
		}
	}
	return 0, false
}

// along is p's coordinate measured in the direction of travel.
func along(d Direction, p cp.Vector) float64 {
	return p.Dot(d.Vector())
}

// across is p's coordinate measured towards the right-hand side of travel.
func across(d Direction, p cp.Vector) float64 {
	switch d {
	case Up, Down:
		return p.X
	case Right:
		return -p.Y
	default:
		return p.Y
	}
}
