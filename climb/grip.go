package climb

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

const (
	MinQuality = 1
	MaxQuality = 10
)

// GripType classifies a handhold. The search algorithms pass it through
// untouched.
type GripType int

const (
	GripSquare GripType = iota
	GripPeg
	GripLadder
)

var gripTypeNames = [...]string{
	GripSquare: "square",
	GripPeg:     "peg",
	GripLadder:  "ladder",
}

func (t GripType) String() string {
	if t < GripSquare || t > GripLadder {
		return fmt.Sprintf("grip_type(%d)", int(t))
	}
	return gripTypeNames[t]
}

func ParseGripType(s string) (GripType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return GripSquare, nil
	}
	for i, n := range gripTypeNames {
		if n == name {
			return GripType(i), nil
		}
	}
	return GripSquare, fmt.Errorf("climb: unknown grip type %q", s)
}

// Grip is a handhold on static level geometry. Grips are created once at level
// load and never change; two grips are the same handhold only if they are the
// same pointer.
type Grip struct {
	id       int
	position cp.Vector
	quality  int
	typ      GripType
}

func NewGrip(id int, position cp.Vector, quality int, typ GripType) (*Grip, error) {
	if quality < MinQuality || quality > MaxQuality {
		return nil, fmt.Errorf("climb: grip %d quality %d: %w", id, quality, ErrInvalidQuality)
	}
	return &Grip{id: id, position: position, quality: quality, typ: typ}, nil
}

func (g *Grip) ID() int {
	return g.id
}

func (g *Grip) Position() cp.Vector {
	return g.position
}

func (g *Grip) Quality() int {
	return g.quality
}

func (g *Grip) Type() GripType {
	return g.typ
}

func (g *Grip) String() string {
	if g == nil {
		return "<none>"
	}
	return fmt.Sprintf("grip#%d(%.3f,%.3f q%d %s)", g.id, g.position.X, g.position.Y, g.quality, g.typ)
}
