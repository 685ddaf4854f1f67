package climb

import (
	"fmt"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

type cellKey struct {
	col, row int
}

// GridIndex buckets grips by their nearest grid node.
type GridIndex struct {
	geom  Geometry
	cells map[cellKey][]*Grip
	grips []*Grip
}

func NewGridIndex(geom Geometry, grips []*Grip) (*GridIndex, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	x := &GridIndex{
		geom:  geom,
		cells: make(map[cellKey][]*Grip, len(grips)),
	}
	for _, g := range grips {
		if err := x.Add(g); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (x *GridIndex) Add(g *Grip) error {
	if dup := duplicateOf(x.geom, x, g); dup != nil {
		return fmt.Errorf("climb: grip %d collides with grip %d: %w", g.id, dup.id, ErrDuplicateGrip)
	}
	k := x.keyFor(g.position)
	x.cells[k] = append(x.cells[k], g)
	x.grips = append(x.grips, g)
	return nil
}

func (x *GridIndex) Len() int {
	return len(x.grips)
}

// Grips returns every registered grip ordered by ID.
func (x *GridIndex) Grips() []*Grip {
	out := append([]*Grip(nil), x.grips...)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (x *GridIndex) keyFor(p cp.Vector) cellKey {
	col, row := x.geom.Cell(p)
	return cellKey{col: col, row: row}
}

// visit calls fn for every grip bucketed within reach of p on both axes.
func (x *GridIndex) visit(p cp.Vector, reach float64, fn func(*Grip)) {
	lo := x.keyFor(cp.Vector{X: p.X - reach, Y: p.Y - reach})
	hi := x.keyFor(cp.Vector{X: p.X + reach, Y: p.Y + reach})
	for col := lo.col; col <= hi.col; col++ {
		for row := lo.row; row <= hi.row; row++ {
			for _, g := range x.cells[cellKey{col: col, row: row}] {
				fn(g)
			}
		}
	}
}

func (x *GridIndex) Nearest(p cp.Vector, radius float64) *Grip {
	var best *Grip
	x.visit(p, radius+x.geom.HalfWidth, func(g *Grip) {
		if x.geom.footprintDistance(p, g) > radius {
			return
		}
		if better(p, g, best) {
			best = g
		}
	})
	return best
}

func (x *GridIndex) At(p cp.Vector, halfExtent float64) *Grip {
	reach := halfExtent + x.geom.HalfWidth
	var best *Grip
	x.visit(p, reach, func(g *Grip) {
		if math.Abs(g.position.X-p.X) > reach || math.Abs(g.position.Y-p.Y) > reach {
			return
		}
		if better(p, g, best) {
			best = g
		}
	})
	return best
}
