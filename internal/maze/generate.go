package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidDimensions is returned when a grid is too small to carve a start
// and a distinct goal.
var ErrInvalidDimensions = errors.New("maze: invalid dimensions")

// MinDimension is the smallest width or height Generate accepts.
const MinDimension = 3

// carveSteps are the 2-cell strides used while carving.
var carveSteps = [4]Coord{
	{X: 0, Y: -2},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Generate carves a w×h maze with randomized Prim's on the odd sub-grid.
//
// The origin is a random odd-aligned interior cell and becomes Start. Each
// iteration removes a random frontier cell and, with the four strides in
// shuffled order, carves every unvisited interior target and the wall
// between. The last cell carved becomes Goal. Every open cell is reachable
// from Start.
//
// All randomness comes from rng, so a fixed seed gives a fixed maze.
func Generate(w, h int, rng *rand.Rand) (*Grid, error) {
	if w < MinDimension || h < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimensions, w, h, MinDimension, MinDimension)
	}

	g := newGrid(w, h)
	origin := Coord{X: randomOdd(rng, w), Y: randomOdd(rng, h)}
	g.set(origin, Path)

	visited := mapset.New[Coord]()
	visited.Put(origin)
	order := []Coord{origin}
	frontier := []Coord{origin}

	steps := carveSteps
	for len(frontier) > 0 {
		// Random draw with swap-remove.
		i := rng.Intn(len(frontier))
		cur := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		rng.Shuffle(len(steps), func(a, b int) { steps[a], steps[b] = steps[b], steps[a] })
		for _, d := range steps {
			next := cur.Add(d.X, d.Y)
			if !g.interior(next) || visited.Has(next) {
				continue
			}
			g.set(cur.Add(d.X/2, d.Y/2), Path)
			g.set(next, Path)
			visited.Put(next)
			order = append(order, next)
			frontier = append(frontier, next)
		}
	}

	if len(order) < 2 {
		return nil, fmt.Errorf("%w: %dx%d has room for only one carved cell", ErrInvalidDimensions, w, h)
	}

	goal := order[len(order)-1]
	g.set(goal, Goal)
	g.set(origin, Start)
	g.start = origin
	g.goal = goal
	return g, nil
}

// randomOdd returns a uniformly random odd value in [1, n-2].
func randomOdd(rng *rand.Rand, n int) int {
	return 2*rng.Intn((n-1)/2) + 1
}
