package maze

// Directions lists unit steps in expansion order: up, down, left, right.
var Directions = [4]Coord{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Excluder reports membership of a coordinate in some set of cells the caller
// wants skipped. *mapset.Set[Coord] satisfies it.
type Excluder interface {
	Has(Coord) bool
}

// Expand returns the open neighbours of c in Directions order, skipping any
// neighbour contained in one of the exclusion sets.
func (g *Grid) Expand(c Coord, exclude ...Excluder) []Coord {
	var out []Coord
next:
	for _, d := range Directions {
		n := c.Add(d.X, d.Y)
		if !g.IsOpen(n) {
			continue
		}
		for _, ex := range exclude {
			if ex.Has(n) {
				continue next
			}
		}
		out = append(out, n)
	}
	return out
}
