package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/maze-search/internal/maze"
)

// loopRows: start (1,1), goal (3,3), one loop round a central wall.
var loopRows = []string{
	"00000",
	"0A110",
	"01010",
	"011B0",
	"00000",
}

func loopGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.FromRows(loopRows)
	require.NoError(t, err)
	return g
}

func at(x, y int) maze.Coord { return maze.Coord{X: x, Y: y} }

func ptr(x, y int) *maze.Coord {
	c := at(x, y)
	return &c
}

func positions(history []Node) []maze.Coord {
	out := make([]maze.Coord, len(history))
	for i, n := range history {
		out[i] = n.Pos
	}
	return out
}

func TestExplore_LoopFixtureOrder(t *testing.T) {
	history, err := NewAgent(ParentPrevious).Explore(loopGrid(t), at(1, 1))
	require.NoError(t, err)

	want := []Node{
		{Pos: at(1, 1), Parent: nil},
		{Pos: at(1, 2), Parent: ptr(1, 1)},
		{Pos: at(2, 1), Parent: ptr(1, 2)},
		{Pos: at(1, 3), Parent: ptr(2, 1)},
		{Pos: at(3, 1), Parent: ptr(1, 3)},
		{Pos: at(2, 3), Parent: ptr(3, 1)},
		{Pos: at(3, 2), Parent: ptr(2, 3)},
		{Pos: at(3, 3), Parent: ptr(3, 2)},
	}
	assert.Equal(t, want, history)
}

func TestExplore_DiscovererParents(t *testing.T) {
	history, err := NewAgent(ParentDiscoverer).Explore(loopGrid(t), at(1, 1))
	require.NoError(t, err)

	// Same dequeue order; only the links change.
	assert.Equal(t, []maze.Coord{at(1, 1), at(1, 2), at(2, 1), at(1, 3), at(3, 1), at(2, 3), at(3, 2), at(3, 3)}, positions(history))
	assert.Nil(t, history[0].Parent)
	assert.Equal(t, ptr(1, 1), history[2].Parent)
	assert.Equal(t, ptr(2, 3), history[7].Parent)
	for _, n := range history[1:] {
		require.NotNil(t, n.Parent)
		assert.True(t, n.Pos.Adjacent(*n.Parent), "discoverer of %s should be adjacent", n.Pos)
	}
}

func TestExplore_StartIsGoal(t *testing.T) {
	g, err := maze.FromRows([]string{
		"0000",
		"0B10",
		"0A00",
		"0000",
	})
	require.NoError(t, err)

	history, err := NewAgent(ParentPrevious).Explore(g, at(1, 1))
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].IsRoot())
}

func TestExplore_GoalUnreachable(t *testing.T) {
	g, err := maze.FromRows([]string{
		"00000",
		"0A100",
		"00000",
		"000B0",
		"00000",
	})
	require.NoError(t, err)

	history, err := NewAgent(ParentPrevious).Explore(g, g.Start())
	assert.ErrorIs(t, err, ErrGoalUnreachable)
	assert.Len(t, history, 2)
}

func TestExplore_InvalidStart(t *testing.T) {
	g := loopGrid(t)
	_, err := NewAgent(ParentPrevious).Explore(g, at(0, 0))
	assert.ErrorIs(t, err, ErrInvalidStart)
	_, err = NewAgent(ParentPrevious).Explore(g, at(-3, 9))
	assert.ErrorIs(t, err, ErrInvalidStart)
}

func TestExplore_GeneratedProperties(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := maze.Generate(25, 25, rand.New(rand.NewSource(seed))) // #nosec G404 -- test only
		require.NoError(t, err)

		history, err := NewAgent(ParentPrevious).Explore(g, g.Start())
		require.NoError(t, err, "seed=%d", seed)
		require.NotEmpty(t, history)
		assert.Equal(t, g.Goal(), history[len(history)-1].Pos, "seed=%d: history must end at goal", seed)
		assert.True(t, history[0].IsRoot())
		for i, n := range history[1:] {
			assert.NotNil(t, n.Parent, "seed=%d: entry %d has no parent", seed, i+1)
		}

		seen := map[maze.Coord]bool{}
		for _, n := range history {
			assert.False(t, seen[n.Pos], "seed=%d: %s explored twice", seed, n.Pos)
			seen[n.Pos] = true
			assert.True(t, g.IsOpen(n.Pos), "seed=%d: explored wall %s", seed, n.Pos)
		}
	}
}

func TestExplore_Idempotent(t *testing.T) {
	g, err := maze.Generate(25, 25, rand.New(rand.NewSource(11))) // #nosec G404 -- test only
	require.NoError(t, err)

	a, err := NewAgent(ParentPrevious).Explore(g, g.Start())
	require.NoError(t, err)
	b, err := NewAgent(ParentPrevious).Explore(g, g.Start())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseParentMode(t *testing.T) {
	m, err := ParseParentMode("discoverer")
	require.NoError(t, err)
	assert.Equal(t, ParentDiscoverer, m)

	m, err = ParseParentMode("")
	require.NoError(t, err)
	assert.Equal(t, ParentPrevious, m)
	assert.Equal(t, "previous", m.String())

	_, err = ParseParentMode("astar")
	assert.Error(t, err)
}
