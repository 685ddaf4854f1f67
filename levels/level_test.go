package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
)

const sampleLevel = `
name: sample
origin: {x: 0.5, y: 0.25}
spawn: {x: 0.5, y: 0.5}
layout: |
  P30.
  9 L1 5
grips:
  - {x: 1.5, y: 0.25, quality: 4, type: ladder}
goal: {x: 0.625, y: 0.375}
`

func TestParseLayout(t *testing.T) {
	lvl, err := Parse("sample", []byte(sampleLevel))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lvl.Name != "sample" || !lvl.HasGoal || lvl.Geometry != climb.DefaultGeometry {
		t.Fatalf("unexpected header %+v", lvl)
	}

	want := []struct {
		x, y    float64
		quality int
		typ     climb.GripType
	}{
		{0.5, 0.5, 3, climb.GripPeg},
		{0.75, 0.5, 10, climb.GripSquare},
		{0.5, 0.25, 9, climb.GripSquare},
		{0.75, 0.25, 1, climb.GripLadder},
		{1.0, 0.25, 5, climb.GripSquare},
		{1.5, 0.25, 4, climb.GripLadder},
	}
	if len(lvl.Grips) != len(want) {
		t.Fatalf("expected %d grips, got %d", len(want), len(lvl.Grips))
	}
	for i, w := range want {
		g := lvl.Grips[i]
		if g.ID() != i+1 || g.Position() != (cp.Vector{X: w.x, Y: w.y}) || g.Quality() != w.quality || g.Type() != w.typ {
			t.Fatalf("grip %d = %v, want %+v", i, g, w)
		}
	}
	if lvl.Index().At(cp.Vector{X: 1.0, Y: 0.25}, lvl.Geometry.HalfWidth) != lvl.Grips[4] {
		t.Fatalf("index does not find layout grips")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"off_grid_grip", "grips:\n  - {x: 0.1, y: 0, quality: 5}\n", ErrOffGrid},
		{"off_grid_origin", "origin: {x: 0.1, y: 0}\nlayout: \"5\"\n", ErrOffGrid},
		{"bad_quality", "grips:\n  - {x: 0, y: 0, quality: 11}\n", climb.ErrInvalidQuality},
		{"duplicate_cell", "layout: \"5\"\ngrips:\n  - {x: 0, y: 0, quality: 5}\n", climb.ErrDuplicateGrip},
		{"no_grips", "name: empty\n", ErrInvalidLevel},
		{"bad_layout_char", "layout: \"5x5\"\n", ErrInvalidLevel},
		{"dangling_prefix", "layout: \"5P\"\n", ErrInvalidLevel},
		{"pickup_without_amount", "layout: \"55\"\npickups:\n  - {x: 0, y: 0}\n", ErrInvalidLevel},
		{"bad_geometry", "spacing: 0.1\nhalf_width: 0.08\nlayout: \"5\"\n", climb.ErrInvalidGeometry},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.name, []byte(c.src))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
	if _, err := Parse("broken", []byte("layout: [")); err == nil {
		t.Fatalf("expected a yaml error")
	}
}

func TestEmbeddedLevels(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Fatalf("expected embedded levels, got %v", names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !lvl.HasGoal {
				t.Fatalf("level has no goal")
			}
			pf := climb.NewPathfinder(lvl.Geometry, lvl.Index())
			c := climb.NewController(pf, climb.DefaultControllerConfig(), nil)
			hand := lvl.Spawn.Add(cp.Vector{X: -lvl.Geometry.Spacing / 2, Y: lvl.Geometry.Spacing / 2})
			if !c.Attach(hand, climb.SideLeft) {
				t.Fatalf("cannot attach at spawn")
			}
			if _, ok := climb.PlanRoute(pf, c.Current(), lvl.Goal, 2000); !ok {
				t.Fatalf("goal unreachable from spawn")
			}
		})
	}
}

func TestLoadUnknownSuggests(t *testing.T) {
	_, err := Load("tutorail")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if !strings.Contains(err.Error(), `"tutorial"`) {
		t.Fatalf("expected a suggestion, got %v", err)
	}
	if got := Suggest("zzzzzzzz", Names()); got != "" {
		t.Fatalf("unexpected suggestion %q", got)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	src := "name: override\nlayout: |\n  55\n  55\n"
	if err := os.WriteFile(filepath.Join(dir, "tutorial.yaml"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := Load("levels/tutorial.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Name != "override" || len(lvl.Grips) != 4 {
		t.Fatalf("disk override ignored: %+v", lvl)
	}

	lvl, err = LoadFile(filepath.Join(dir, "tutorial.yaml"))
	if err != nil || lvl.Name != "override" {
		t.Fatalf("LoadFile: %v", err)
	}
}
