// Package search explores a maze.Grid breadth-first, reconstructs paths from
// the exploration history and tracks a player's click-driven exploration.
package search

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/Garsondee/maze-search/internal/maze"
)

var (
	// ErrGoalUnreachable means the frontier emptied before the goal was dequeued.
	ErrGoalUnreachable = errors.New("search: goal unreachable")
	// ErrInvalidStart means the start cell is off the grid or a wall.
	ErrInvalidStart = errors.New("search: invalid start")
)

// ParentMode selects how Explore fills in Node.Parent.
type ParentMode int

const (
	// ParentPrevious links each node to the node dequeued just before it.
	// It is not the true BFS tree: the previous node need not even be
	// adjacent.
	ParentPrevious ParentMode = iota
	// ParentDiscoverer links each node to the neighbour that enqueued it.
	ParentDiscoverer
)

func (m ParentMode) String() string {
	switch m {
	case ParentPrevious:
		return "previous"
	case ParentDiscoverer:
		return "discoverer"
	default:
		return "unknown"
	}
}

// ParseParentMode maps "previous" or "discoverer" to a ParentMode.
func ParseParentMode(s string) (ParentMode, error) {
	switch s {
	case "previous", "":
		return ParentPrevious, nil
	case "discoverer":
		return ParentDiscoverer, nil
	default:
		return 0, fmt.Errorf("search: unknown parent mode %q (supported: previous, discoverer)", s)
	}
}

// Node is one explored cell. Parent is nil only for the start cell.
type Node struct {
	Pos    maze.Coord
	Parent *maze.Coord
}

// IsRoot reports whether the node has no parent.
func (n Node) IsRoot() bool { return n.Parent == nil }

// Agent is the automated breadth-first searcher.
type Agent struct {
	Mode ParentMode
}

// NewAgent returns an agent using the given parent mode.
func NewAgent(mode ParentMode) *Agent {
	return &Agent{Mode: mode}
}

// Explore runs BFS from start and returns every dequeued cell in order,
// ending with the goal. Neighbours are enqueued up, down, left, right,
// skipping cells already queued or explored. The result is deterministic for
// a given grid and start.
func (a *Agent) Explore(g *maze.Grid, start maze.Coord) ([]Node, error) {
	if !g.IsOpen(start) {
		return nil, fmt.Errorf("%w: %s is %s", ErrInvalidStart, start, g.At(start))
	}

	queue := []maze.Coord{start}
	queued := mapset.New[maze.Coord]()
	queued.Put(start)
	explored := mapset.New[maze.Coord]()
	discoveredBy := map[maze.Coord]maze.Coord{}

	var history []Node
	var prev *maze.Coord
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		queued.Remove(cur)

		history = append(history, Node{Pos: cur, Parent: a.parentOf(cur, prev, discoveredBy)})
		explored.Put(cur)
		if g.At(cur) == maze.Goal {
			return history, nil
		}

		for _, n := range g.Expand(cur, &queued, &explored) {
			queue = append(queue, n)
			queued.Put(n)
			discoveredBy[n] = cur
		}
		p := cur
		prev = &p
	}
	return history, fmt.Errorf("%w: explored %d cells from %s", ErrGoalUnreachable, len(history), start)
}

func (a *Agent) parentOf(cur maze.Coord, prev *maze.Coord, discoveredBy map[maze.Coord]maze.Coord) *maze.Coord {
	if a.Mode == ParentDiscoverer {
		p, ok := discoveredBy[cur]
		if !ok {
			return nil
		}
		return &p
	}
	if prev == nil {
		return nil
	}
	p := *prev
	return &p
}
