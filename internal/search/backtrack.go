package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Garsondee/maze-search/internal/maze"
)

// ErrBrokenHistory means a history could not be walked back to its root.
// Histories produced by Explore on a connected grid never trigger it.
var ErrBrokenHistory = errors.New("search: broken history")

// Backtrack rebuilds a start→goal path from an exploration history. Starting
// at the last entry it repeatedly takes the nearest earlier entry adjacent to
// the current one, stopping at the first root it takes.
//
// Only adjacency and the root marker are consulted, so the result is a valid
// walk whichever ParentMode produced the history.
func Backtrack(history []Node) ([]maze.Coord, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBrokenHistory)
	}
	cur := history[len(history)-1]
	path := []maze.Coord{cur.Pos}
	if cur.IsRoot() {
		return path, nil
	}
	for i := len(history) - 2; i >= 0; i-- {
		n := history[i]
		if !n.Pos.Adjacent(cur.Pos) {
			continue
		}
		path = append(path, n.Pos)
		cur = n
		if cur.IsRoot() {
			slices.Reverse(path)
			return path, nil
		}
	}
	return nil, fmt.Errorf("%w: no root reached from %s", ErrBrokenHistory, history[len(history)-1].Pos)
}

// TraceParents follows Parent links from the last entry back to the root.
// With ParentDiscoverer histories this is the BFS shortest path.
func TraceParents(history []Node) ([]maze.Coord, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBrokenHistory)
	}
	byPos := make(map[maze.Coord]Node, len(history))
	for _, n := range history {
		byPos[n.Pos] = n
	}

	cur := history[len(history)-1]
	path := []maze.Coord{cur.Pos}
	for !cur.IsRoot() {
		next, ok := byPos[*cur.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %s of %s not explored", ErrBrokenHistory, *cur.Parent, cur.Pos)
		}
		if len(path) > len(history) {
			return nil, fmt.Errorf("%w: parent cycle at %s", ErrBrokenHistory, cur.Pos)
		}
		cur = next
		path = append(path, cur.Pos)
	}
	slices.Reverse(path)
	return path, nil
}
