package climb

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Corner names one of the four slots of a Square.
type Corner int

const (
	UpLeft Corner = iota
	UpRight
	DownLeft
	DownRight
)

var cornerNames = [...]string{
	UpLeft:    "up_left",
	UpRight:   "up_right",
	DownLeft:  "down_left",
	DownRight: "down_right",
}

// Corners lists the slots in the order used to derive a square's center.
var Corners = [4]Corner{UpLeft, UpRight, DownLeft, DownRight}

func (c Corner) String() string {
	if c < UpLeft || c > DownRight {
		return fmt.Sprintf("corner(%d)", int(c))
	}
	return cornerNames[c]
}

func (c Corner) Up() bool {
	return c == UpLeft || c == UpRight
}

func (c Corner) Right() bool {
	return c == UpRight || c == DownRight
}

func cornerAt(right, up bool) Corner {
	switch {
	case up && !right:
		return UpLeft
	case up && right:
		return UpRight
	case !up && !right:
		return DownLeft
	default:
		return DownRight
	}
}

// offset is the vector from a square's center to corner c.
func (c Corner) offset(g Geometry) cp.Vector {
	half := g.Spacing / 2
	v := cp.Vector{X: -half, Y: -half}
	if c.Right() {
		v.X = half
	}
	if c.Up() {
		v.Y = half
	}
	return v
}

// directionTo returns the cardinal direction from c to an edge-adjacent
// corner o.
func (c Corner) directionTo(o Corner) Direction {
	switch {
	case c.Up() == o.Up() && o.Right():
		return Right
	case c.Up() == o.Up():
		return Left
	case o.Up():
		return Up
	default:
		return Down
	}
}

// Side distinguishes the two leading corners of a move from the climber's
// point of view, facing the direction of travel.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

func (s Side) Opposite() Side {
	if s == SideRight {
		return SideLeft
	}
	return SideRight
}

var leadingCorners = [...][2]Corner{
	Up:    {UpLeft, UpRight},
	Right: {UpRight, DownRight},
	Down:  {DownLeft, DownRight},
	Left:  {DownLeft, UpLeft},
}

// LeadingCorner returns the corner on the leading edge for d that the given
// side's hand reaches for.
func LeadingCorner(d Direction, s Side) Corner {
	mustCardinal(d)
	return leadingCorners[d][s]
}

// TrailingCorner mirrors LeadingCorner across the square, keeping the side.
func TrailingCorner(d Direction, s Side) Corner {
	c := LeadingCorner(d, s)
	if d.Vertical() {
		return cornerAt(c.Right(), !c.Up())
	}
	return cornerAt(!c.Right(), c.Up())
}

// Square is the 2x2 group of grid positions a climber holds. It refers to
// grips but never owns them; a nil slot means no handhold at that corner.
// The zero value is the empty square.
type Square struct {
	grips [4]*Grip
}

func NewSquare(upLeft, upRight, downLeft, downRight *Grip) Square {
	return Square{grips: [4]*Grip{upLeft, upRight, downLeft, downRight}}
}

func (s Square) Grip(c Corner) *Grip {
	return s.grips[c]
}

func (s Square) UpLeft() *Grip    { return s.grips[UpLeft] }
func (s Square) UpRight() *Grip   { return s.grips[UpRight] }
func (s Square) DownLeft() *Grip  { return s.grips[DownLeft] }
func (s Square) DownRight() *Grip { return s.grips[DownRight] }

// Grips returns the populated slots in corner order.
func (s Square) Grips() []*Grip {
	out := make([]*Grip, 0, 4)
	for _, g := range s.grips {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}

func (s Square) Count() int {
	n := 0
	for _, g := range s.grips {
		if g != nil {
			n++
		}
	}
	return n
}

func (s Square) Empty() bool {
	return s.Count() == 0
}

// Connectible reports whether the square holds DefaultMinimumGrips grips. A
// pathfinder with its own minimum uses Pathfinder.Connectible instead.
func (s Square) Connectible() bool {
	return s.Count() >= DefaultMinimumGrips
}

// The Has*Side predicates report whether either corner on that side is held;
// the HasFull*Side predicates require both.

func (s Square) HasTopSide() bool {
	return s.grips[UpLeft] != nil || s.grips[UpRight] != nil
}

func (s Square) HasBottomSide() bool {
	return s.grips[DownLeft] != nil || s.grips[DownRight] != nil
}

func (s Square) HasLeftSide() bool {
	return s.grips[UpLeft] != nil || s.grips[DownLeft] != nil
}

func (s Square) HasRightSide() bool {
	return s.grips[UpRight] != nil || s.grips[DownRight] != nil
}

func (s Square) HasFullTopSide() bool {
	return s.grips[UpLeft] != nil && s.grips[UpRight] != nil
}

func (s Square) HasFullBottomSide() bool {
	return s.grips[DownLeft] != nil && s.grips[DownRight] != nil
}

func (s Square) HasFullLeftSide() bool {
	return s.grips[UpLeft] != nil && s.grips[DownLeft] != nil
}

func (s Square) HasFullRightSide() bool {
	return s.grips[UpRight] != nil && s.grips[DownRight] != nil
}

// HasLeadingEdge reports whether at least one corner on the d edge is held.
func (s Square) HasLeadingEdge(d Direction) bool {
	l, r := s.Leading(d)
	return l != nil || r != nil
}

// HasFullSide reports whether both corners on the d edge are held.
func (s Square) HasFullSide(d Direction) bool {
	l, r := s.Leading(d)
	return l != nil && r != nil
}

// Leading returns the left and right hand grips on the d edge.
func (s Square) Leading(d Direction) (left, right *Grip) {
	return s.grips[LeadingCorner(d, SideLeft)], s.grips[LeadingCorner(d, SideRight)]
}

// Center is derived from the first populated corner in corner order. The
// second result is false for the empty square.
func (s Square) Center(g Geometry) (cp.Vector, bool) {
	for _, c := range Corners {
		if grip := s.grips[c]; grip != nil {
			return grip.position.Sub(c.offset(g)), true
		}
	}
	return cp.Vector{}, false
}

// CornerPosition is where corner c sits, whether or not it is held.
func (s Square) CornerPosition(c Corner, g Geometry) (cp.Vector, bool) {
	center, ok := s.Center(g)
	if !ok {
		return cp.Vector{}, false
	}
	return center.Add(c.offset(g)), true
}

// Consistent reports whether every populated corner agrees on the center.
func (s Square) Consistent(g Geometry) bool {
	center, ok := s.Center(g)
	if !ok {
		return true
	}
	for _, c := range Corners {
		grip := s.grips[c]
		if grip == nil {
			continue
		}
		if grip.position.Distance(center.Add(c.offset(g))) >= g.HalfWidth {
			return false
		}
	}
	return true
}

// Equal compares slot identity, not grip positions.
func (s Square) Equal(o Square) bool {
	return s.grips == o.grips
}

func (s Square) String() string {
	if s.Empty() {
		return "square{}"
	}
	var b strings.Builder
	b.WriteString("square{")
	first := true
	for _, c := range Corners {
		if s.grips[c] == nil {
			continue
		}
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&b, "%s:%d", c, s.grips[c].id)
	}
	b.WriteString("}")
	return b.String()
}
