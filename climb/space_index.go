package climb

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
)

// SpaceIndex registers every grip as a static box shape in a chipmunk space
// and answers queries through the space's spatial index.
type SpaceIndex struct {
	geom  Geometry
	space *cp.Space
	grips []*Grip
}

func NewSpaceIndex(geom Geometry, grips []*Grip) (*SpaceIndex, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	x := &SpaceIndex{
		geom:  geom,
		space: cp.NewSpace(),
	}
	for _, g := range grips {
		if err := x.Add(g); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (x *SpaceIndex) Add(g *Grip) error {
	if dup := duplicateOf(x.geom, x, g); dup != nil {
		return fmt.Errorf("climb: grip %d collides with grip %d: %w", g.id, dup.id, ErrDuplicateGrip)
	}
	bb := cp.NewBBForExtents(g.position, x.geom.HalfWidth, x.geom.HalfWidth)
	shape := cp.NewBox2(x.space.StaticBody, bb, 0)
	shape.UserData = g
	x.space.AddShape(shape)
	x.grips = append(x.grips, g)
	return nil
}

// Space exposes the underlying chipmunk space for debug drawing.
func (x *SpaceIndex) Space() *cp.Space {
	return x.space
}

func (x *SpaceIndex) Len() int {
	return len(x.grips)
}

func (x *SpaceIndex) Grips() []*Grip {
	out := append([]*Grip(nil), x.grips...)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (x *SpaceIndex) Nearest(p cp.Vector, radius float64) *Grip {
	var best *Grip
	x.space.BBQuery(cp.NewBBForCircle(p, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		g, ok := shape.UserData.(*Grip)
		if !ok {
			return
		}
		if shape.PointQuery(p).Distance > radius {
			return
		}
		if better(p, g, best) {
			best = g
		}
	}, nil)
	return best
}

func (x *SpaceIndex) At(p cp.Vector, halfExtent float64) *Grip {
	var best *Grip
	x.space.BBQuery(cp.NewBBForExtents(p, halfExtent, halfExtent), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		g, ok := shape.UserData.(*Grip)
		if !ok {
			return
		}
		if better(p, g, best) {
			best = g
		}
	}, nil)
	return best
}
