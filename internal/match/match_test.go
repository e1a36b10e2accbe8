package match

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/maze-search/internal/config"
	"github.com/Garsondee/maze-search/internal/maze"
	"github.com/Garsondee/maze-search/internal/search"
)

// With a 700px window over 5×5 cells each cell is 140px.
const fixtureCell = 140

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func loopMatch(t *testing.T, opts ...Option) *Match {
	t.Helper()
	g, err := maze.FromRows([]string{
		"00000",
		"0A110",
		"01010",
		"011B0",
		"00000",
	})
	require.NoError(t, err)
	base := []Option{WithGrid(g), WithWindow(700), WithFPS(3), WithHoldTicks(2), WithLogger(quietLogger())}
	m, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return m
}

// pressPlay holds the left button over Play until the match starts.
func pressPlay(t *testing.T, m *Match) {
	t.Helper()
	b := m.PlayButton()
	for i := 0; i < 10 && m.Screen() == ScreenMenu; i++ {
		m.Update(Input{CursorX: b.X + b.W/2, CursorY: b.Y + b.H/2, LeftHeld: true})
	}
	require.Equal(t, ScreenPlaying, m.Screen())
}

func clickCell(m *Match, x, y int) {
	m.Update(Input{
		CursorX:     x*fixtureCell + fixtureCell/2,
		CursorY:     y*fixtureCell + fixtureCell/2,
		LeftHeld:    true,
		LeftClicked: true,
	})
}

func TestNew_RunsAgentUpFront(t *testing.T) {
	m := loopMatch(t)
	assert.Equal(t, ScreenMenu, m.Screen())
	assert.Equal(t, fixtureCell, m.CellSize())
	assert.Len(t, m.AgentHistory(), 8)
	assert.Equal(t, []maze.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}, m.AgentPath())
	_, ok := m.Result()
	assert.False(t, ok)
	assert.Equal(t, 8, m.Events().Tally().AgentExplored)
}

func TestNew_GeneratedFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99
	m, err := New(append(ConfigOptions(cfg), WithLogger(quietLogger()))...)
	require.NoError(t, err)
	assert.Equal(t, 25, m.Grid().Width())
	assert.Equal(t, 28, m.CellSize())
	require.NoError(t, maze.Validate(m.Grid()))

	again, err := New(append(ConfigOptions(cfg), WithLogger(quietLogger()))...)
	require.NoError(t, err)
	assert.Equal(t, m.Grid().String(), again.Grid().String())
	assert.NotEqual(t, m.ID(), again.ID())
}

func TestNew_RejectsBadSetup(t *testing.T) {
	_, err := New(WithSize(2, 2), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, err = New(WithSize(25, 25), WithWindow(10), WithLogger(quietLogger()))
	assert.Error(t, err)

	unreachable, err := maze.FromRows([]string{
		"00000",
		"0A100",
		"00000",
		"000B0",
		"00000",
	})
	require.NoError(t, err)
	_, err = New(WithGrid(unreachable), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, search.ErrGoalUnreachable)
}

func TestMenu_PlayButtonCooldown(t *testing.T) {
	m := loopMatch(t)
	b := m.PlayButton()
	in := Input{CursorX: b.X + 10, CursorY: b.Y + 10, LeftHeld: true}

	m.Update(in)
	m.Update(in)
	assert.Equal(t, ScreenMenu, m.Screen(), "button must ignore presses during its cooldown")
	m.Update(in)
	assert.Equal(t, ScreenPlaying, m.Screen())
}

func TestMenu_PressOutsideButton(t *testing.T) {
	m := loopMatch(t)
	for i := 0; i < 10; i++ {
		m.Update(Input{CursorX: 5, CursorY: 5, LeftHeld: true, LeftClicked: true})
	}
	assert.Equal(t, ScreenMenu, m.Screen())
}

func TestPlaying_EscapeReturnsToMenu(t *testing.T) {
	m := loopMatch(t)
	pressPlay(t, m)
	clickCell(m, 1, 2)
	m.Update(Input{Escape: true})
	assert.Equal(t, ScreenMenu, m.Screen())
	// Progress survives the trip through the menu.
	assert.True(t, m.Player().IsExplored(maze.Coord{X: 1, Y: 2}))

	pressPlay(t, m)
	assert.Equal(t, 3, m.Events().Tally().ScreenChanges)
}

func TestPlaying_IgnoresInvalidClicks(t *testing.T) {
	m := loopMatch(t)
	pressPlay(t, m)
	for _, in := range []Input{
		{CursorX: -4, CursorY: 20, LeftClicked: true},
		{CursorX: 800, CursorY: 20, LeftClicked: true},
		{CursorX: 699, CursorY: 699, LeftClicked: true}, // wall (4,4)
		{CursorX: 3*fixtureCell + 1, CursorY: 3*fixtureCell + 1, LeftClicked: true}, // goal, not yet frontier
		{CursorX: 1*fixtureCell + 1, CursorY: 2*fixtureCell + 1, LeftClicked: false}, // no click edge
	} {
		m.Update(in)
	}
	assert.Zero(t, m.Events().Tally().Clicks)
	assert.Len(t, m.Player().Explored(), 1)
	assert.Equal(t, ScreenPlaying, m.Screen())
}

func TestPlaying_ReachGoalThenHoldAndStop(t *testing.T) {
	m := loopMatch(t)
	pressPlay(t, m)
	clickCell(m, 1, 2)
	clickCell(m, 1, 3)
	clickCell(m, 2, 3)
	assert.Equal(t, ScreenPlaying, m.Screen())
	clickCell(m, 3, 3)
	require.Equal(t, ScreenFinished, m.Screen())

	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, VerdictPlayer, res.Verdict)
	assert.Equal(t, 25, res.Cells)
	assert.Equal(t, 5, res.PlayerExplored)
	assert.Equal(t, 8, res.AgentExplored)
	assert.Equal(t, 20, res.PlayerScore)
	assert.Equal(t, 17, res.AgentScore)
	assert.Equal(t, 4, m.Events().Tally().Clicks)

	// Clicks during the result screen change nothing.
	clickCell(m, 2, 1)
	assert.False(t, m.Done())
	assert.Len(t, m.Player().Explored(), 5)

	m.Update(Input{})
	assert.True(t, m.Done())
	tally := m.Events().Tally()
	assert.Equal(t, "hold_elapsed", tally.StopReason)
	assert.Equal(t, "player_wins", tally.Verdict)
	assert.Equal(t, 3, tally.Margin)
	assert.Positive(t, tally.FinishTick)

	tick := m.Tick()
	m.Update(Input{})
	assert.Equal(t, tick, m.Tick(), "a stopped match ignores updates")

	var sb strings.Builder
	_, err := m.Events().WriteTo(&sb)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "player click  explore (3,3)")
}

func TestQuit_FromAnyScreen(t *testing.T) {
	m := loopMatch(t)
	m.Update(Input{Quit: true})
	assert.True(t, m.Done())

	m = loopMatch(t)
	pressPlay(t, m)
	m.Update(Input{Quit: true})
	assert.True(t, m.Done())
	assert.Equal(t, "quit_requested", m.Events().Tally().StopReason)
}

func TestShadeAt(t *testing.T) {
	m := loopMatch(t)
	assert.Equal(t, ShadeWall, m.ShadeAt(maze.Coord{X: 0, Y: 0}))
	assert.Equal(t, ShadeExplored, m.ShadeAt(maze.Coord{X: 1, Y: 1}))
	assert.Equal(t, ShadeFrontier, m.ShadeAt(maze.Coord{X: 1, Y: 2}))
	assert.Equal(t, ShadeUnexplored, m.ShadeAt(maze.Coord{X: 3, Y: 1}))
	assert.Equal(t, ShadeUnexplored, m.ShadeAt(maze.Coord{X: 3, Y: 3}))

	pressPlay(t, m)
	clickCell(m, 1, 2)
	assert.Equal(t, ShadeExplored, m.ShadeAt(maze.Coord{X: 1, Y: 2}))
	clickCell(m, 1, 3)
	clickCell(m, 2, 3)
	assert.Equal(t, ShadeFrontier, m.ShadeAt(maze.Coord{X: 3, Y: 3}))
	clickCell(m, 3, 3)
	assert.Equal(t, ShadeGoalFound, m.ShadeAt(maze.Coord{X: 3, Y: 3}))
}

func TestExport(t *testing.T) {
	m := loopMatch(t)
	assert.Equal(t, "00000\n0A110\n01010\n011B0\n00000\n", m.Export())
	assert.Equal(t, 1, m.Events().Tally().Exports)
}
