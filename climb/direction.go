package climb

import (
	"fmt"
	"math"
	"strings"

	"github.com/jakecoffman/cp"
)

// Direction is one of the four cardinal unit vectors on the climbing grid.
// World space is y-up.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Cardinals lists the four directions in the order candidate moves are
// computed.
var Cardinals = [4]Direction{Up, Right, Down, Left}

var directionNames = [...]string{
	None:  "none",
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (d Direction) String() string {
	if d < None || d > Left {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) Vector() cp.Vector {
	switch d {
	case Up:
		return cp.Vector{X: 0, Y: 1}
	case Right:
		return cp.Vector{X: 1, Y: 0}
	case Down:
		return cp.Vector{X: 0, Y: -1}
	case Left:
		return cp.Vector{X: -1, Y: 0}
	}
	return cp.Vector{}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	return None
}

func (d Direction) index() int {
	return int(d) - 1
}

// ParseDirection accepts the lower-case names produced by String.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := Up; d <= Left; d++ {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return None, fmt.Errorf("climb: parse direction %q: %w", s, ErrNotCardinal)
}

// DirectionFromVector converts a vector that normalises to exactly one of the
// cardinal unit vectors. Anything else is rejected.
func DirectionFromVector(v cp.Vector) (Direction, error) {
	if v.Length() == 0 {
		return None, fmt.Errorf("climb: zero vector: %w", ErrNotCardinal)
	}
	n := v.Normalize()
	const eps = 1e-9
	for _, d := range Cardinals {
		u := d.Vector()
		if math.Abs(n.X-u.X) < eps && math.Abs(n.Y-u.Y) < eps {
			return d, nil
		}
	}
	return None, fmt.Errorf("climb: vector (%g, %g): %w", v.X, v.Y, ErrNotCardinal)
}

// SnapCardinal snaps a continuous lean vector to its closest cardinal
// direction. Vectors shorter than deadzone snap to None; equal axes favour the
// horizontal direction.
func SnapCardinal(v cp.Vector, deadzone float64) Direction {
	if v.Length() < deadzone || v.Length() == 0 {
		return None
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		if v.X > 0 {
			return Right
		}
		return Left
	}
	if v.Y > 0 {
		return Up
	}
	return Down
}

func mustCardinal(d Direction) {
	if !d.Valid() {
		panic(fmt.Errorf("climb: %v: %w", d, ErrNotCardinal))
	}
}
