package search

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/Garsondee/maze-search/internal/maze"
)

// Player tracks the human side of a match. The start is explored from the
// outset and its neighbours form the first frontier; each accepted click
// moves one frontier cell into the explored set.
type Player struct {
	grid        *maze.Grid
	explored    []maze.Coord
	exploredSet mapset.Set[maze.Coord]
	frontier    []maze.Coord
	frontierSet mapset.Set[maze.Coord]
	score       int
	finished    bool
}

// NewPlayer seeds a player on g.
func NewPlayer(g *maze.Grid) *Player {
	p := &Player{
		grid:        g,
		exploredSet: mapset.New[maze.Coord](),
		frontierSet: mapset.New[maze.Coord](),
	}
	p.markExplored(g.Start())
	p.grow(g.Start())
	return p
}

// Click tries to explore c. Clicks on cells outside the frontier, and any
// click once the goal has been reached, are ignored. It reports whether the
// click was accepted.
func (p *Player) Click(c maze.Coord) bool {
	if p.finished || !p.frontierSet.Has(c) {
		return false
	}
	i := slices.Index(p.frontier, c)
	p.frontier = slices.Delete(p.frontier, i, i+1)
	p.frontierSet.Remove(c)
	p.markExplored(c)

	if p.grid.At(c) == maze.Goal {
		p.score = len(p.explored)
		p.finished = true
	}
	p.grow(c)
	return true
}

func (p *Player) markExplored(c maze.Coord) {
	p.explored = append(p.explored, c)
	p.exploredSet.Put(c)
}

func (p *Player) grow(c maze.Coord) {
	for _, n := range p.grid.Expand(c, &p.exploredSet, &p.frontierSet) {
		p.frontier = append(p.frontier, n)
		p.frontierSet.Put(n)
	}
}

// InFrontier reports whether c is currently clickable.
func (p *Player) InFrontier(c maze.Coord) bool { return p.frontierSet.Has(c) }

// IsExplored reports whether c has been explored.
func (p *Player) IsExplored(c maze.Coord) bool { return p.exploredSet.Has(c) }

// Explored returns explored cells in click order, start first.
func (p *Player) Explored() []maze.Coord { return slices.Clone(p.explored) }

// Frontier returns the clickable cells in the order they were discovered.
func (p *Player) Frontier() []maze.Coord { return slices.Clone(p.frontier) }

// Score returns the explored count frozen when the goal was reached.
// ok is false until then.
func (p *Player) Score() (score int, ok bool) { return p.score, p.finished }

// Finished reports whether the goal has been explored.
func (p *Player) Finished() bool { return p.finished }
