package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/levels"
)

func mustParse(t *testing.T, src string) *levels.Level {
	t.Helper()
	lvl, err := levels.Parse("test", []byte(src))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return lvl
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    cp.Vector
		wantErr bool
	}{
		{"0.125,0.375", cp.Vector{X: 0.125, Y: 0.375}, false},
		{" 1 , -2.5 ", cp.Vector{X: 1, Y: -2.5}, false},
		{"1;2", cp.Vector{}, true},
		{"x,2", cp.Vector{}, true},
		{"1,", cp.Vector{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGridRowsMatchesLayout(t *testing.T) {
	lvl, err := levels.Load("tutorial")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"5555", "5555", "5..5", "5555", "7777", "9999"}
	got := gridRows(lvl, nil)
	if strings.Join(got, "/") != strings.Join(want, "/") {
		t.Fatalf("gridRows() = %v, want %v", got, want)
	}

	mark := map[int]bool{lvl.Grips[0].ID(): true}
	if got := gridRows(lvl, mark); got[0][0] != '*' {
		t.Fatalf("expected the first grip marked, got %q", got[0])
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		layout    string
		squares   int
		wantJumps bool
		grips     int
	}{
		{"pair", "layout: |\n  55\n", 2, false, 2},
		{"gap", "layout: |\n  55\n  ..\n  55\n", 4, true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := mustParse(t, tt.layout)
			pf := climb.NewPathfinder(lvl.Geometry, lvl.Index())
			s := summarize(lvl, pf)
			if s.Grips != tt.grips || s.Squares != tt.squares {
				t.Fatalf("summarize() = %+v", s)
			}
			if (s.JumpLinks > 0) != tt.wantJumps {
				t.Fatalf("jump links = %d, want jumps %v", s.JumpLinks, tt.wantJumps)
			}
			for _, sq := range connectibleSquares(lvl, pf) {
				if !pf.Connectible(sq) || !sq.Consistent(lvl.Geometry) {
					t.Fatalf("bad square %v", sq)
				}
			}
		})
	}
}

func TestMoveKind(t *testing.T) {
	lvl := mustParse(t, "layout: |\n  555\n  555\n")
	pf := climb.NewPathfinder(lvl.Geometry, lvl.Index())
	sq := pf.SquareAt(cp.Vector{X: 0.125, Y: 0.125})
	moves := pf.Candidates(sq)

	if got := moveKind(moves.For(climb.Right)); got != "reach" {
		t.Errorf("right = %q, want reach", got)
	}
	if got := moveKind(moves.For(climb.Left)); got != "none" {
		t.Errorf("left = %q, want none", got)
	}
	if got := moveKind(pf.ShuffleCandidate(sq, climb.Left)); got != "shuffle" {
		t.Errorf("left shuffle = %q, want shuffle", got)
	}
	if got := moveKind(climb.Move{Direction: climb.Left}); got != "none" {
		t.Errorf("empty = %q, want none", got)
	}
	if got := moveKind(climb.Move{Direction: climb.Up, Target: sq, JumpRequired: true, JumpSteps: 2}); got != "jump 2" {
		t.Errorf("jump = %q", got)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSummarizeIsolatedSquare(t *testing.T) {
	lvl := mustParse(t, "layout: |\n  55\n  55\n")
	pf := climb.NewPathfinder(lvl.Geometry, lvl.Index())
	s := summarize(lvl, pf)
	if s.DeadEnds == 0 {
		t.Fatalf("an isolated square must count as a dead end: %+v", s)
	}
	sq := pf.SquareAt(cp.Vector{X: 0.125, Y: 0.125})
	for _, m := range pf.Candidates(sq) {
		if got := moveKind(m); got != "none" {
			t.Errorf("%s = %q, want none", m.Direction, got)
		}
	}
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	wall := filepath.Join(dir, "wall.yaml")
	src := "name: wall\nspawn: {x: 0.125, y: 0.125}\ngoal: {x: 0.375, y: 0.375}\nlayout: |\n  555\n  555\n  555\n"
	if err := os.WriteFile(wall, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	db := filepath.Join(dir, "sessions.db")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"list", []string{"list"}, "tutorial", false},
		{"inspect", []string{"inspect", "tutorial"}, "squares", false},
		{"inspect_space", []string{"inspect", "chimney", "--space"}, "jump links", false},
		{"moves", []string{"moves", wall, "--from", "0.125,0.125"}, "reach", false},
		{"moves_shuffle", []string{"moves", wall, "--from", "0.125,0.125", "--shuffle"}, "shuffle", false},
		{"moves_off_wall", []string{"moves", wall, "--from", "5,5"}, "", true},
		{"route", []string{"route", wall, "--from", "0.125,0.125", "--to", "0.375,0.375"}, "2 moves", false},
		{"unknown_level", []string{"inspect", "tutorail"}, "", true},
		{"sessions_empty", []string{"sessions", "--db", db}, "No sessions recorded yet.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("%v: error = %v, wantErr %v\n%s", tt.args, err, tt.wantErr, out)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("%v: output missing %q:\n%s", tt.args, tt.want, out)
			}
		})
	}
}
