package climb

import "fmt"

// Move is a candidate transition from one square to another. A Move is only
// possible when some hand can take it: the Target's leading edge holds a grip,
// or for a shuffle its trailing edge is full.
type Move struct {
	Direction    Direction
	From         Square
	Target       Square
	JumpRequired bool
	JumpSteps    int
	Side         Side
	Shuffle      bool
}

func (m Move) Valid() bool {
	if m.Target.Empty() {
		return false
	}
	if m.Shuffle {
		return m.Target.HasFullSide(m.Direction.Opposite())
	}
	return m.Target.HasLeadingEdge(m.Direction)
}

func (m Move) WithSide(s Side) Move {
	m.Side = s
	return m
}

// ConnectingCorner is the corner of Target the committing hand reaches for.
// Shuffle moves land on the trailing edge instead.
func (m Move) ConnectingCorner() Corner {
	if m.Shuffle {
		return TrailingCorner(m.Direction, m.Side)
	}
	return LeadingCorner(m.Direction, m.Side)
}

func (m Move) ConnectingGrip() *Grip {
	if !m.Valid() {
		return nil
	}
	return m.Target.Grip(m.ConnectingCorner())
}

// UsableSide returns the first side whose leading corner is held.
func (m Move) UsableSide() (Side, bool) {
	if !m.Valid() {
		return SideLeft, false
	}
	for _, s := range [2]Side{SideLeft, SideRight} {
		if m.Target.Grip(LeadingCorner(m.Direction, s)) != nil {
			return s, true
		}
	}
	return SideLeft, false
}

// Shufflable reports whether Target can be reached by sliding along the
// trailing edge: its leading edge is empty and its trailing edge full. There
// is no shuffle upward.
func (m Move) Shufflable() bool {
	if m.Direction == Up || m.Target.Empty() || m.Target.HasLeadingEdge(m.Direction) {
		return false
	}
	return m.Target.HasFullSide(m.Direction.Opposite())
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("move{%s: none}", m.Direction)
	}
	if m.Shuffle {
		return fmt.Sprintf("move{%s: shuffle -> %s}", m.Direction, m.Target)
	}
	if m.JumpRequired {
		return fmt.Sprintf("move{%s: jump %d -> %s}", m.Direction, m.JumpSteps, m.Target)
	}
	return fmt.Sprintf("move{%s: -> %s}", m.Direction, m.Target)
}

// Moves holds one candidate per cardinal direction.
type Moves [4]Move

func (ms Moves) For(d Direction) Move {
	mustCardinal(d)
	return ms[d.index()]
}

func (ms Moves) Any() bool {
	for _, m := range ms {
		if m.Valid() {
			return true
		}
	}
	return false
}
