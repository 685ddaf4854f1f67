package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/levels"
)

func parsePoint(s string) (cp.Vector, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return cp.Vector{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("point %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("point %q: bad y: %w", s, err)
	}
	return cp.Vector{X: x, Y: y}, nil
}

func formatPoint(p cp.Vector) string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
}

// levelSummary counts what a level offers a climber.
type levelSummary struct {
	Grips     int
	Squares   int
	JumpLinks int
	DeadEnds  int
}

// connectibleSquares lists every square holding enough grips to hang from,
// bottom row first and left to right within a row.
func connectibleSquares(lvl *levels.Level, pf *climb.Pathfinder) []climb.Square {
	half := lvl.Geometry.Spacing / 2
	type key struct{ col, row int }
	seen := make(map[key]bool)
	var keys []key
	for _, g := range lvl.Grips {
		for _, off := range [4]cp.Vector{{X: -half, Y: -half}, {X: half, Y: -half}, {X: -half, Y: half}, {X: half, Y: half}} {
			center := g.Position().Add(off)
			col, row := lvl.Geometry.Cell(center.Sub(cp.Vector{X: half, Y: half}))
			k := key{col, row}
			if seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].row != keys[j].row {
			return keys[i].row < keys[j].row
		}
		return keys[i].col < keys[j].col
	})

	var out []climb.Square
	for _, k := range keys {
		center := cp.Vector{
			X: float64(k.col)*lvl.Geometry.Spacing + half,
			Y: float64(k.row)*lvl.Geometry.Spacing + half,
		}
		if sq := pf.SquareAt(center); pf.Connectible(sq) {
			out = append(out, sq)
		}
	}
	return out
}

func summarize(lvl *levels.Level, pf *climb.Pathfinder) levelSummary {
	s := levelSummary{Grips: len(lvl.Grips)}
	for _, sq := range connectibleSquares(lvl, pf) {
		s.Squares++
		moves := pf.Candidates(sq)
		if !moves.Any() {
			s.DeadEnds++
		}
		for _, m := range moves {
			if m.Valid() && m.JumpRequired {
				s.JumpLinks++
			}
		}
	}
	return s
}

// moveKind names how a candidate would be taken.
func moveKind(m climb.Move) string {
	switch {
	case !m.Valid():
		return "none"
	case m.JumpRequired:
		return fmt.Sprintf("jump %d", m.JumpSteps)
	case m.Shuffle:
		return "shuffle"
	default:
		return "reach"
	}
}

// gridRows renders the grip map top row first. Each cell is the grip's
// quality digit ('0' for 10), '.' when empty, or '*' for grips in mark.
func gridRows(lvl *levels.Level, mark map[int]bool) []string {
	if len(lvl.Grips) == 0 {
		return nil
	}
	geom := lvl.Geometry
	minCol, minRow := math.MaxInt, math.MaxInt
	maxCol, maxRow := math.MinInt, math.MinInt
	for _, g := range lvl.Grips {
		col, row := geom.Cell(g.Position())
		minCol, maxCol = min(minCol, col), max(maxCol, col)
		minRow, maxRow = min(minRow, row), max(maxRow, row)
	}

	reg := lvl.Index()
	rows := make([]string, 0, maxRow-minRow+1)
	for row := maxRow; row >= minRow; row-- {
		var b strings.Builder
		for col := minCol; col <= maxCol; col++ {
			p := cp.Vector{X: float64(col) * geom.Spacing, Y: float64(row) * geom.Spacing}
			g := reg.At(p, geom.HalfWidth)
			switch {
			case g == nil:
				b.WriteByte('.')
			case mark[g.ID()]:
				b.WriteByte('*')
			default:
				b.WriteByte(byte('0' + g.Quality()%10))
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	poorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	fairStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	markStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func styleCell(ch rune) string {
	s := string(ch)
	switch {
	case ch == '.':
		return emptyStyle.Render(s)
	case ch == '*':
		return markStyle.Render(s)
	case ch == '0' || ch >= '7':
		return goodStyle.Render(s)
	case ch >= '4':
		return fairStyle.Render(s)
	default:
		return poorStyle.Render(s)
	}
}

func renderGrid(rows []string) string {
	styled := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, ch := range row {
			b.WriteString(styleCell(ch))
		}
		styled[i] = b.String()
	}
	return boxStyle.Render(strings.Join(styled, "\n"))
}
