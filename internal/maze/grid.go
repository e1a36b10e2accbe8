package maze

import "fmt"

// Cell classifies one grid unit.
type Cell uint8

const (
	Wall  Cell = iota // Impassable
	Path              // Carved corridor
	Start             // Carve origin, where both searchers begin
	Goal              // Last cell carved
)

// Text symbols for each cell kind. These are the only wire format the grid has.
const (
	WallSymbol  = '0'
	PathSymbol  = '1'
	StartSymbol = 'A'
	GoalSymbol  = 'B'
)

// Symbol returns the text symbol for the cell kind.
func (c Cell) Symbol() byte {
	switch c {
	case Path:
		return PathSymbol
	case Start:
		return StartSymbol
	case Goal:
		return GoalSymbol
	default:
		return WallSymbol
	}
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// Open reports whether the cell can be walked on.
func (c Cell) Open() bool { return c != Wall }

// Coord is a grid position. X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether o is one orthogonal step away from c.
func (c Coord) Adjacent(o Coord) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a fixed-size maze. Cells are stored row-major (y*cols+x).
// A Grid is not modified after Generate or Parse returns it.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
	start Coord
	goal  Coord
}

// newGrid returns a cols×rows grid filled with walls.
func newGrid(cols, rows int) *Grid {
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cols }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.rows }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.cols * g.rows }

// Start returns the start cell.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.cols && c.Y < g.rows
}

// interior reports whether c lies strictly inside the outer wall ring.
func (g *Grid) interior(c Coord) bool {
	return c.X > 0 && c.Y > 0 && c.X < g.cols-1 && c.Y < g.rows-1
}

// At returns the cell at c. Out-of-bounds positions read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Y*g.cols+c.X]
}

// IsOpen reports whether c is on the grid and not a wall.
func (g *Grid) IsOpen(c Coord) bool {
	return g.At(c).Open()
}

func (g *Grid) set(c Coord, kind Cell) {
	g.cells[c.Y*g.cols+c.X] = kind
}

// Count returns how many cells have the given kind.
func (g *Grid) Count(kind Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == kind {
			n++
		}
	}
	return n
}

// PixelToCell converts a pixel position to the cell under it, given the
// on-screen size of one cell. ok is false when the position is off the grid.
func (g *Grid) PixelToCell(px, py, cellPx int) (c Coord, ok bool) {
	if cellPx <= 0 || px < 0 || py < 0 {
		return Coord{}, false
	}
	c = Coord{X: px / cellPx, Y: py / cellPx}
	return c, g.InBounds(c)
}

// CellToPixel returns the top-left pixel of cell c.
func CellToPixel(c Coord, cellPx int) (int, int) {
	return c.X * cellPx, c.Y * cellPx
}
