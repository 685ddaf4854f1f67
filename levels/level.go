package levels

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
	"gopkg.in/yaml.v3"
)

var (
	ErrOffGrid      = errors.New("levels: position is off the grip grid")
	ErrInvalidLevel = errors.New("levels: invalid level")
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

type GripSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Quality int     `yaml:"quality"`
	Type    string  `yaml:"type"`
}

type PickupSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Amount float64 `yaml:"amount"`
	Edible bool    `yaml:"edible"`
	Radius float64 `yaml:"radius"`
}

// File is the on-disk YAML shape of a level.
type File struct {
	Name      string       `yaml:"name"`
	Spacing   float64      `yaml:"spacing"`
	HalfWidth float64      `yaml:"half_width"`
	Origin    Point        `yaml:"origin"`
	Spawn     Point        `yaml:"spawn"`
	Layout    string       `yaml:"layout"`
	Grips     []GripSpec   `yaml:"grips"`
	Pickups   []PickupSpec `yaml:"pickups"`
	Goal      *Point       `yaml:"goal"`
}

// Level is a validated, ready to climb level.
type Level struct {
	Name     string
	Geometry climb.Geometry
	Spawn    cp.Vector
	Goal     cp.Vector
	HasGoal  bool
	Grips    []*climb.Grip
	Pickups  []PickupSpec
	Bounds   cp.BB

	index *climb.GridIndex
}

// Parse decodes and validates a level.
func Parse(name string, data []byte) (*Level, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	lvl, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("levels: build %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	return lvl, nil
}

func (f File) Build() (*Level, error) {
	geom := climb.DefaultGeometry
	if f.Spacing > 0 {
		geom.Spacing = f.Spacing
	}
	if f.HalfWidth > 0 {
		geom.HalfWidth = f.HalfWidth
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	origin := f.Origin.Vector()
	if !geom.OnGrid(origin) {
		return nil, fmt.Errorf("origin (%g, %g): %w", origin.X, origin.Y, ErrOffGrid)
	}

	cells, err := parseLayout(f.Layout)
	if err != nil {
		return nil, err
	}

	var grips []*climb.Grip
	nextID := 1
	for _, c := range cells {
		pos := cp.Vector{
			X: origin.X + float64(c.col)*geom.Spacing,
			Y: origin.Y + float64(c.row)*geom.Spacing,
		}
		g, err := climb.NewGrip(nextID, pos, c.quality, c.typ)
		if err != nil {
			return nil, err
		}
		grips = append(grips, g)
		nextID++
	}
	for i, spec := range f.Grips {
		pos := cp.Vector{X: spec.X, Y: spec.Y}
		if !geom.OnGrid(pos) {
			return nil, fmt.Errorf("grip %d at (%g, %g): %w", i, spec.X, spec.Y, ErrOffGrid)
		}
		typ, err := climb.ParseGripType(spec.Type)
		if err != nil {
			return nil, err
		}
		g, err := climb.NewGrip(nextID, pos, spec.Quality, typ)
		if err != nil {
			return nil, err
		}
		grips = append(grips, g)
		nextID++
	}
	if len(grips) == 0 {
		return nil, fmt.Errorf("no grips: %w", ErrInvalidLevel)
	}

	index, err := climb.NewGridIndex(geom, grips)
	if err != nil {
		return nil, err
	}

	for i, p := range f.Pickups {
		if p.Amount == 0 {
			return nil, fmt.Errorf("pickup %d has no amount: %w", i, ErrInvalidLevel)
		}
		if p.Radius <= 0 {
			f.Pickups[i].Radius = geom.Spacing / 2
		}
	}

	lvl := &Level{
		Name:     f.Name,
		Geometry: geom,
		Spawn:    f.Spawn.Vector(),
		Grips:    grips,
		Pickups:  f.Pickups,
		Bounds:   boundsOf(grips, geom.Spacing),
		index:    index,
	}
	if f.Goal != nil {
		lvl.Goal = f.Goal.Vector()
		lvl.HasGoal = true
	}
	return lvl, nil
}

// Index returns the level's grid-hash registry.
func (l *Level) Index() *climb.GridIndex {
	return l.index
}

// SpaceIndex builds a physics-backed registry over the same grips.
func (l *Level) SpaceIndex() (*climb.SpaceIndex, error) {
	return climb.NewSpaceIndex(l.Geometry, l.Grips)
}

// KillY is the height below which a falling climber is respawned.
func (l *Level) KillY() float64 {
	return l.Bounds.B - 2
}

func boundsOf(grips []*climb.Grip, margin float64) cp.BB {
	first := grips[0].Position()
	bb := cp.BB{L: first.X, B: first.Y, R: first.X, T: first.Y}
	for _, g := range grips[1:] {
		bb = bb.Expand(g.Position())
	}
	return cp.BB{L: bb.L - margin, B: bb.B - margin, R: bb.R + margin, T: bb.T + margin}
}
