package match

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-search/internal/config"
	"github.com/Garsondee/maze-search/internal/maze"
	"github.com/Garsondee/maze-search/internal/search"
)

// Screen is the part of the game currently shown.
type Screen int

const (
	ScreenMenu     Screen = iota // Title and Play button
	ScreenPlaying                // Player clicking through the maze
	ScreenFinished               // Scores, verdict and agent path
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Play button geometry, relative to the window centre.
const (
	playButtonW = 250
	playButtonH = 100
	playButtonY = 100
)

// Input is the input state sampled for one frame.
type Input struct {
	CursorX     int
	CursorY     int
	LeftHeld    bool // left button is down this frame
	LeftClicked bool // left button went down this frame
	Escape      bool // back to menu
	Quit        bool
}

// Match is one game session: a maze, the agent's precomputed search and the
// player's live exploration. It has no rendering or input dependency; the
// window layer feeds it Input once per frame.
type Match struct {
	id     uuid.UUID
	grid   *maze.Grid
	player *search.Player

	agentHistory []search.Node
	agentPath    []maze.Coord

	screen   Screen
	tick     int
	play     *Button
	cellSize int
	holdLeft int
	result   Result
	done     bool

	events *EventLog
	logger *logrus.Entry

	// construction settings
	width, height int
	windowPx      int
	fps           int
	holdTicks     int
	mode          search.ParentMode
	rng           *rand.Rand
	baseLogger    *logrus.Logger
}

// Option configures a Match before its maze is built.
type Option func(*Match)

// WithSize sets the generated maze dimensions.
func WithSize(w, h int) Option {
	return func(m *Match) {
		m.width = w
		m.height = h
	}
}

// WithSeed seeds maze generation.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithGrid uses a prepared grid instead of generating one.
func WithGrid(g *maze.Grid) Option {
	return func(m *Match) {
		m.grid = g
	}
}

// WithWindow sets the square window size in pixels.
func WithWindow(px int) Option {
	return func(m *Match) {
		m.windowPx = px
	}
}

// WithFPS sets the frame rate, which is also the Play button cooldown.
func WithFPS(fps int) Option {
	return func(m *Match) {
		m.fps = fps
	}
}

// WithHoldTicks sets how many frames the result screen stays up.
func WithHoldTicks(n int) Option {
	return func(m *Match) {
		m.holdTicks = n
	}
}

// WithParentMode selects the agent's parent linking.
func WithParentMode(mode search.ParentMode) Option {
	return func(m *Match) {
		m.mode = mode
	}
}

// WithLogger routes match logging to l.
func WithLogger(l *logrus.Logger) Option {
	return func(m *Match) {
		m.baseLogger = l
	}
}

// ConfigOptions translates a Config into match options.
func ConfigOptions(cfg config.Config) []Option {
	return []Option{
		WithSize(cfg.Width, cfg.Height),
		WithSeed(cfg.ResolveSeed()),
		WithWindow(cfg.Window),
		WithFPS(cfg.FPS),
		WithHoldTicks(cfg.HoldTicks()),
		WithParentMode(cfg.ParentMode),
	}
}

// New builds the maze, runs the agent to completion and seeds the player.
func New(opts ...Option) (*Match, error) {
	m := &Match{
		id:         uuid.New(),
		events:     NewEventLog(),
		width:      25,
		height:     25,
		windowPx:   700,
		fps:        60,
		holdTicks:  300,
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- game default
		baseLogger: logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(m)
	}
	m.logger = m.baseLogger.WithField("match", m.id.String())

	if m.grid == nil {
		g, err := maze.Generate(m.width, m.height, m.rng)
		if err != nil {
			return nil, fmt.Errorf("match: generate maze: %w", err)
		}
		m.grid = g
	}
	m.cellSize = m.windowPx / max(m.grid.Width(), m.grid.Height())
	if m.cellSize < 1 {
		return nil, fmt.Errorf("match: %dpx window too small for %dx%d maze", m.windowPx, m.grid.Width(), m.grid.Height())
	}

	history, err := search.NewAgent(m.mode).Explore(m.grid, m.grid.Start())
	if err != nil {
		return nil, fmt.Errorf("match: agent search: %w", err)
	}
	path, err := search.Backtrack(history)
	if err != nil {
		return nil, fmt.Errorf("match: agent backtrack: %w", err)
	}
	m.agentHistory = history
	m.agentPath = path
	m.player = search.NewPlayer(m.grid)
	m.play = NewButton(m.windowPx/2-playButtonW/2, playButtonY, playButtonW, playButtonH, "Play", m.fps)

	m.record(ActorAgent, CategoryScore, keyAgentScore, fmt.Sprintf("%d cells, path %d", len(history), len(path)), float64(len(history)))
	m.logger.WithFields(logrus.Fields{
		"width":         m.grid.Width(),
		"height":        m.grid.Height(),
		"start":         m.grid.Start().String(),
		"goal":          m.grid.Goal().String(),
		"agentExplored": len(history),
		"agentPath":     len(path),
		"parentMode":    m.mode.String(),
	}).Info("[MATCH] maze ready")
	return m, nil
}

// Update advances the match by one frame.
func (m *Match) Update(in Input) {
	if m.done {
		return
	}
	m.tick++
	m.play.Tick()

	if in.Quit {
		m.stop("quit_requested")
		return
	}

	switch m.screen {
	case ScreenMenu:
		if m.play.Poll(in.CursorX, in.CursorY, in.LeftHeld) {
			m.play.Reset()
			m.setScreen(ScreenPlaying)
		}
	case ScreenPlaying:
		if in.Escape {
			m.setScreen(ScreenMenu)
			return
		}
		if in.LeftClicked {
			m.clickAt(in.CursorX, in.CursorY)
		}
	case ScreenFinished:
		m.holdLeft--
		if m.holdLeft <= 0 {
			m.stop("hold_elapsed")
		}
	}
}

// clickAt maps a pixel to a cell and, if it is on the player's frontier,
// explores it. Anything else is ignored.
func (m *Match) clickAt(px, py int) {
	c, ok := m.grid.PixelToCell(px, py, m.cellSize)
	if !ok || !m.player.Click(c) {
		return
	}
	explored := len(m.player.Explored())
	m.record(ActorPlayer, CategoryClick, keyExplore, c.String(), float64(explored))

	score, reached := m.player.Score()
	if !reached {
		return
	}
	m.result = DetermineVerdict(m.grid.Size(), score, len(m.agentHistory))
	m.record(ActorMatch, CategoryScore, keyVerdict, m.result.Verdict.String(), float64(m.result.PlayerScore-m.result.AgentScore))
	m.logger.WithFields(logrus.Fields{
		"verdict":     m.result.Verdict.String(),
		"playerScore": m.result.PlayerScore,
		"agentScore":  m.result.AgentScore,
	}).Info("[MATCH] goal reached")
	m.holdLeft = m.holdTicks
	m.setScreen(ScreenFinished)
}

func (m *Match) setScreen(s Screen) {
	if s == m.screen {
		return
	}
	m.record(ActorMatch, CategoryScreen, keyScreenChange, m.screen.String()+" -> "+s.String(), 0)
	m.logger.WithFields(logrus.Fields{"from": m.screen.String(), "to": s.String()}).Debug("[MATCH] screen change")
	m.screen = s
}

func (m *Match) stop(reason string) {
	m.done = true
	m.record(ActorMatch, CategoryScreen, keyStop, reason, 0)
	m.logger.WithField("reason", reason).Info("[MATCH] stopped")
}

func (m *Match) record(actor Actor, cat Category, key, value string, num float64) {
	m.events.add(m.tick, actor, cat, key, value, num)
}

// Export returns the maze in its text form and logs the export.
func (m *Match) Export() string {
	m.record(ActorPlayer, CategoryExport, keyMazeText, fmt.Sprintf("%dx%d", m.grid.Width(), m.grid.Height()), 0)
	return m.grid.String()
}

// Shade is how a cell is shown to the player.
type Shade int

const (
	ShadeWall       Shade = iota
	ShadeUnexplored       // open, and the goal while unfound
	ShadeFrontier         // clickable
	ShadeExplored         // explored path, and always the start
	ShadeGoalFound
)

// ShadeAt classifies c for display. Frontier membership wins over the cell kind.
func (m *Match) ShadeAt(c maze.Coord) Shade {
	if m.player.InFrontier(c) {
		return ShadeFrontier
	}
	switch m.grid.At(c) {
	case maze.Start:
		return ShadeExplored
	case maze.Path:
		if m.player.IsExplored(c) {
			return ShadeExplored
		}
		return ShadeUnexplored
	case maze.Goal:
		if m.player.IsExplored(c) {
			return ShadeGoalFound
		}
		return ShadeUnexplored
	default:
		return ShadeWall
	}
}

// ID is the session id attached to every log line.
func (m *Match) ID() uuid.UUID { return m.id }

// Grid returns the maze being played.
func (m *Match) Grid() *maze.Grid { return m.grid }

// Player returns the human side's exploration state.
func (m *Match) Player() *search.Player { return m.player }

// Screen returns the screen currently shown.
func (m *Match) Screen() Screen { return m.screen }

// Tick returns the number of updates processed.
func (m *Match) Tick() int { return m.tick }

// PlayButton returns the menu's Play button.
func (m *Match) PlayButton() *Button { return m.play }

// CellSize returns the on-screen size of one cell in pixels.
func (m *Match) CellSize() int { return m.cellSize }

// Window returns the square window size in pixels.
func (m *Match) Window() int { return m.windowPx }

// Events returns the match's event log.
func (m *Match) Events() *EventLog { return m.events }

// Done reports whether the match has asked to quit.
func (m *Match) Done() bool { return m.done }

// HoldRemaining returns the frames left on the result screen.
func (m *Match) HoldRemaining() int { return m.holdLeft }

// AgentPath returns the agent's reconstructed start→goal path.
func (m *Match) AgentPath() []maze.Coord { return slices.Clone(m.agentPath) }

// AgentHistory returns the agent's cells in dequeue order.
func (m *Match) AgentHistory() []search.Node { return slices.Clone(m.agentHistory) }

// Result returns the scores once the player has reached the goal.
func (m *Match) Result() (Result, bool) {
	return m.result, m.result.Verdict != VerdictPending
}
