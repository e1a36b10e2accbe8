package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrDisconnected is returned by Validate when some open cell, or the goal,
// cannot be reached from the start.
var ErrDisconnected = errors.New("maze: disconnected")

// Reachable flood-fills from c over open cells and returns every cell reached.
// It returns an empty set when c itself is a wall.
func (g *Grid) Reachable(c Coord) mapset.Set[Coord] {
	seen := mapset.New[Coord]()
	if !g.IsOpen(c) {
		return seen
	}
	seen.Put(c)
	stack := []Coord{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.Expand(cur, &seen) {
			seen.Put(n)
			stack = append(stack, n)
		}
	}
	return seen
}

// Validate checks the structural guarantees of a finished grid: one start,
// one goal, distinct, and every open cell connected to the start.
func Validate(g *Grid) error {
	if n := g.Count(Start); n != 1 {
		return fmt.Errorf("%w: %d start cells", ErrMalformedGrid, n)
	}
	if n := g.Count(Goal); n != 1 {
		return fmt.Errorf("%w: %d goal cells", ErrMalformedGrid, n)
	}
	if g.At(g.start) != Start || g.At(g.goal) != Goal {
		return fmt.Errorf("%w: start/goal markers out of place", ErrMalformedGrid)
	}
	if g.start == g.goal {
		return fmt.Errorf("%w: start equals goal", ErrMalformedGrid)
	}

	reached := g.Reachable(g.start)
	if !reached.Has(g.goal) {
		return fmt.Errorf("%w: goal %s unreachable from start %s", ErrDisconnected, g.goal, g.start)
	}
	open := g.Size() - g.Count(Wall)
	if reached.Size() != open {
		return fmt.Errorf("%w: %d of %d open cells reachable", ErrDisconnected, reached.Size(), open)
	}
	return nil
}
