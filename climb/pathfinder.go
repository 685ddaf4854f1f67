package climb

import "github.com/jakecoffman/cp"

const (
	DefaultMinimumGrips  = 2
	DefaultMaxJumpSpaces = 4
)

// Pathfinder computes the squares reachable from a current square.
type Pathfinder struct {
	Geometry      Geometry
	Registry      Registry
	MinimumGrips  int
	MaxJumpSpaces int
}

func NewPathfinder(geom Geometry, reg Registry) *Pathfinder {
	return &Pathfinder{
		Geometry:      geom,
		Registry:      reg,
		MinimumGrips:  DefaultMinimumGrips,
		MaxJumpSpaces: DefaultMaxJumpSpaces,
	}
}

// Connectible reports whether sq holds enough grips to hang from.
func (p *Pathfinder) Connectible(sq Square) bool {
	return sq.Count() >= p.minimumGrips()
}

func (p *Pathfinder) minimumGrips() int {
	if p.MinimumGrips <= 0 {
		return DefaultMinimumGrips
	}
	return p.MinimumGrips
}

func (p *Pathfinder) maxJumpSpaces() int {
	if p.MaxJumpSpaces <= 0 {
		return DefaultMaxJumpSpaces
	}
	return p.MaxJumpSpaces
}

type adjacentStart struct {
	corner Corner
	h, v   Direction
}

// Each direction tries the preferred leading grip first and only falls back
// to the second when the first is vacant.
var adjacentStarts = [...][2]adjacentStart{
	Up:    {{UpLeft, Right, Up}, {UpRight, Left, Up}},
	Right: {{UpRight, Right, Down}, {DownRight, Right, Up}},
	Down:  {{DownRight, Left, Down}, {DownLeft, Right, Down}},
	Left:  {{DownLeft, Left, Up}, {UpLeft, Left, Down}},
}

// AdjacentSquare returns the square sharing current's d edge, or the empty
// square when it holds fewer than MinimumGrips grips.
func (p *Pathfinder) AdjacentSquare(current Square, d Direction) Square {
	mustCardinal(d)
	for _, start := range adjacentStarts[d] {
		g := current.Grip(start.corner)
		if g == nil {
			continue
		}
		sq := p.Geometry.PopulateFromGrip(p.Registry, g, start.h, start.v)
		if sq.Count() < p.minimumGrips() {
			return Square{}
		}
		return sq
	}
	return Square{}
}

// Candidate resolves the move in direction d. An adjacent square with a held
// leading edge wins, then a jump. Otherwise the move has no target.
func (p *Pathfinder) Candidate(current Square, d Direction) Move {
	mustCardinal(d)
	move := Move{Direction: d, From: current}
	adjacent := p.AdjacentSquare(current, d)
	if !adjacent.Empty() && adjacent.HasLeadingEdge(d) {
		move.Target = adjacent
		return move
	}
	if sq, steps := p.JumpSquare(current, d); !sq.Empty() {
		move.Target = sq
		move.JumpRequired = true
		move.JumpSteps = steps
	}
	return move
}

// ShuffleCandidate returns the shuffle onto the adjacent square in d, or a
// move with no target when that square cannot be shuffled onto.
func (p *Pathfinder) ShuffleCandidate(current Square, d Direction) Move {
	mustCardinal(d)
	move := Move{Direction: d, From: current}
	if current.Empty() {
		return move
	}
	shuffle := Move{Direction: d, From: current, Target: p.AdjacentSquare(current, d), Shuffle: true}
	if !shuffle.Shufflable() {
		return move
	}
	return shuffle
}

// Candidates returns the move for every cardinal direction.
func (p *Pathfinder) Candidates(current Square) Moves {
	var ms Moves
	if current.Empty() {
		for _, d := range Cardinals {
			ms[d.index()] = Move{Direction: d}
		}
		return ms
	}
	for _, d := range Cardinals {
		ms[d.index()] = p.Candidate(current, d)
	}
	return ms
}

// SquareAt returns the square centred on center, or the empty square when it
// holds fewer than MinimumGrips grips.
func (p *Pathfinder) SquareAt(center cp.Vector) Square {
	g := p.Geometry
	for _, c := range Corners {
		grip := p.Registry.At(center.Add(c.offset(g)), g.HalfWidth)
		if grip == nil {
			continue
		}
		h, v := Right, Up
		if c.Right() {
			h = Left
		}
		if c.Up() {
			v = Down
		}
		sq := g.PopulateFromGrip(p.Registry, grip, h, v)
		if sq.Count() < p.minimumGrips() {
			return Square{}
		}
		return sq
	}
	return Square{}
}
