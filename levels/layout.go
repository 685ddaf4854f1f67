package levels

import (
	"fmt"
	"strings"

	"github.com/milk9111/gripclimb/climb"
)

type layoutCell struct {
	col, row int
	quality  int
	typ      climb.GripType
}

// parseLayout reads an ASCII grip map. Rows run top to bottom and the last
// row sits on the origin. Each cell is '.', a quality digit ('0' means 10) or
// a digit prefixed with P (peg) or L (ladder). Spaces are ignored.
func parseLayout(layout string) ([]layoutCell, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.ReplaceAll(strings.TrimRight(line, " \t\r"), " ", "")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}

	var cells []layoutCell
	for i, line := range rows {
		row := len(rows) - 1 - i
		col := 0
		typ := climb.GripSquare
		prefixed := false
		for _, ch := range line {
			switch {
			case ch == '.':
				if prefixed {
					return nil, fmt.Errorf("layout row %d: type prefix before empty cell: %w", i+1, ErrInvalidLevel)
				}
				col++
			case ch == 'P' || ch == 'p' || ch == 'L' || ch == 'l':
				if prefixed {
					return nil, fmt.Errorf("layout row %d: double type prefix: %w", i+1, ErrInvalidLevel)
				}
				typ = climb.GripPeg
				if ch == 'L' || ch == 'l' {
					typ = climb.GripLadder
				}
				prefixed = true
			case ch >= '0' && ch <= '9':
				q := int(ch - '0')
				if q == 0 {
					q = 10
				}
				cells = append(cells, layoutCell{col: col, row: row, quality: q, typ: typ})
				col++
				typ = climb.GripSquare
				prefixed = false
			default:
				return nil, fmt.Errorf("layout row %d: unexpected %q: %w", i+1, ch, ErrInvalidLevel)
			}
		}
		if prefixed {
			return nil, fmt.Errorf("layout row %d: dangling type prefix: %w", i+1, ErrInvalidLevel)
		}
	}
	return cells, nil
}
