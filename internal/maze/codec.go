package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedGrid is returned by Parse for text that does not describe a
// rectangular grid with exactly one start and one goal.
var ErrMalformedGrid = errors.New("maze: malformed grid")

// String renders the grid one row per line using the cell symbols.
//
//	00000
//	0A110
//	00010
//	0B110
//	00000
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			sb.WriteByte(g.cells[y*g.cols+x].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a grid in the form produced by String. Blank lines and
// surrounding whitespace are ignored.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return FromRows(rows)
}

// FromRows builds a grid from one string per row.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrMalformedGrid)
	}

	g := newGrid(cols, len(rows))
	starts, goals := 0, 0
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), cols)
		}
		for x := 0; x < cols; x++ {
			c := Coord{X: x, Y: y}
			switch row[x] {
			case WallSymbol:
				g.set(c, Wall)
			case PathSymbol:
				g.set(c, Path)
			case StartSymbol:
				g.set(c, Start)
				g.start = c
				starts++
			case GoalSymbol:
				g.set(c, Goal)
				g.goal = c
				goals++
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at %s", ErrMalformedGrid, row[x], c)
			}
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: %d start and %d goal cells, want one of each", ErrMalformedGrid, starts, goals)
	}
	return g, nil
}
