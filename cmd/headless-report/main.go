package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-search/internal/match"
	"github.com/Garsondee/maze-search/internal/maze"
	"github.com/Garsondee/maze-search/internal/search"
)

// playCellPx is the cell size of the off-screen window used by -play.
const playCellPx = 8

type runStats struct {
	runIndex int
	seed     int64

	openCells int
	explored  int
	pathLen   int
	shortest  int

	played bool
	play   playStats
}

// playStats is what a scripted match left in its event log.
type playStats struct {
	clicks        int
	screenChanges int
	events        int
	verdict       string
	margin        int
	finishTick    int
	stopReason    string
}

// excess is how many cells the reconstructed path spends over the shortest
// route.
func (rs runStats) excess() int { return rs.pathLen - rs.shortest }

func main() {
	var runs int
	var width, height int
	var seedBase int64
	var seedStep int64
	var modeName string
	var play, dumpEvents bool

	flag.IntVar(&runs, "runs", 5, "number of mazes to generate and solve")
	flag.IntVar(&width, "width", 25, "maze width in cells")
	flag.IntVar(&height, "height", 25, "maze height in cells")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&modeName, "mode", "previous", "parent recording mode (previous|discoverer)")
	flag.BoolVar(&play, "play", false, "also play each maze through a match with a frontier-first player")
	flag.BoolVar(&dumpEvents, "events", false, "print each played match's event log (implies -play)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	mode, err := search.ParseParentMode(modeName)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	play = play || dumpEvents
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	var eventsOut io.Writer = io.Discard
	if dumpEvents {
		eventsOut = os.Stdout
	}

	fmt.Printf("=== Headless Search Report ===\n")
	fmt.Printf("size=%dx%d mode=%s runs=%d seed_base=%d seed_step=%d\n\n", width, height, mode, runs, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		g, err := generate(seed, width, height)
		if err != nil {
			fmt.Printf("error: run %d (seed=%d): %v\n", i+1, seed, err)
			return
		}
		stats, err := runOnce(i+1, seed, g, mode)
		if err != nil {
			fmt.Printf("error: run %d (seed=%d): %v\n", i+1, seed, err)
			return
		}
		if play {
			if stats.play, err = playOnce(g, mode, log, eventsOut); err != nil {
				fmt.Printf("error: run %d (seed=%d) play: %v\n", i+1, seed, err)
				return
			}
			stats.played = true
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func generate(seed int64, width, height int) (*maze.Grid, error) {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible report runs
	g, err := maze.Generate(width, height, rng)
	if err != nil {
		return nil, err
	}
	if err := maze.Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

func runOnce(runIndex int, seed int64, g *maze.Grid, mode search.ParentMode) (runStats, error) {
	history, err := search.NewAgent(mode).Explore(g, g.Start())
	if err != nil {
		return runStats{}, err
	}
	path, err := search.Backtrack(history)
	if err != nil {
		return runStats{}, err
	}

	exact, err := search.NewAgent(search.ParentDiscoverer).Explore(g, g.Start())
	if err != nil {
		return runStats{}, err
	}
	shortest, err := search.TraceParents(exact)
	if err != nil {
		return runStats{}, err
	}

	return runStats{
		runIndex:  runIndex,
		seed:      seed,
		openCells: g.Size() - g.Count(maze.Wall),
		explored:  len(history),
		pathLen:   len(path),
		shortest:  len(shortest),
	}, nil
}

// playOnce runs g through a full match: press Play, then always click the
// oldest frontier cell until the goal is found and the result hold ends.
func playOnce(g *maze.Grid, mode search.ParentMode, log *logrus.Logger, events io.Writer) (playStats, error) {
	m, err := match.New(
		match.WithGrid(g),
		match.WithWindow(max(g.Width(), g.Height())*playCellPx),
		match.WithFPS(1),
		match.WithHoldTicks(0),
		match.WithParentMode(mode),
		match.WithLogger(log),
	)
	if err != nil {
		return playStats{}, err
	}
	if err := playFrontierFirst(m); err != nil {
		return playStats{}, err
	}
	if _, err := m.Events().WriteTo(events); err != nil {
		return playStats{}, err
	}

	t := m.Events().Tally()
	return playStats{
		clicks:        t.Clicks,
		screenChanges: t.ScreenChanges,
		events:        m.Events().Len(),
		verdict:       t.Verdict,
		margin:        t.Margin,
		finishTick:    t.FinishTick,
		stopReason:    t.StopReason,
	}, nil
}

var errPlayStuck = errors.New("scripted player did not finish the match")

func playFrontierFirst(m *match.Match) error {
	cs := m.CellSize()
	b := m.PlayButton()
	limit := m.Grid().Size() + 16
	for step := 0; !m.Done(); step++ {
		if step > limit {
			return fmt.Errorf("%w after %d updates on %s", errPlayStuck, step, m.Screen())
		}
		switch m.Screen() {
		case match.ScreenMenu:
			m.Update(match.Input{CursorX: b.X + b.W/2, CursorY: b.Y + b.H/2, LeftHeld: true})
		case match.ScreenPlaying:
			frontier := m.Player().Frontier()
			if len(frontier) == 0 {
				return fmt.Errorf("%w: frontier empty", errPlayStuck)
			}
			x, y := maze.CellToPixel(frontier[0], cs)
			m.Update(match.Input{CursorX: x + cs/2, CursorY: y + cs/2, LeftHeld: true, LeftClicked: true})
		default:
			m.Update(match.Input{})
		}
	}
	return nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("cells: open=%d explored=%d\n", rs.openCells, rs.explored)
	fmt.Printf("path: length=%d shortest=%d excess=%d\n", rs.pathLen, rs.shortest, rs.excess())
	if rs.played {
		p := rs.play
		fmt.Printf("play: clicks=%d verdict=%s margin=%d finish_tick=%d screen_changes=%d events=%d stop=%s\n",
			p.clicks, p.verdict, p.margin, p.finishTick, p.screenChanges, p.events, p.stopReason)
	}
	fmt.Println()
}

type summary struct {
	mean     float64
	min, max int
}

func (s summary) String() string {
	return fmt.Sprintf("mean=%.1f min=%d max=%d", s.mean, s.min, s.max)
}

func aggregate(all []runStats, field func(runStats) int) summary {
	if len(all) == 0 {
		return summary{}
	}
	s := summary{min: field(all[0]), max: field(all[0])}
	sum := 0
	for _, rs := range all {
		v := field(rs)
		sum += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.mean = float64(sum) / float64(len(all))
	return s
}

func printAggregate(all []runStats) {
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("explored: %s\n", aggregate(all, func(rs runStats) int { return rs.explored }))
	fmt.Printf("path_length: %s\n", aggregate(all, func(rs runStats) int { return rs.pathLen }))
	fmt.Printf("shortest: %s\n", aggregate(all, func(rs runStats) int { return rs.shortest }))
	fmt.Printf("excess: %s\n", aggregate(all, runStats.excess))

	exact := 0
	for _, rs := range all {
		if rs.excess() == 0 {
			exact++
		}
	}
	fmt.Printf("exact_paths=%d/%d\n", exact, len(all))

	verdicts := verdictCounts(all)
	if len(verdicts) == 0 {
		return
	}
	fmt.Printf("play_clicks: %s\n", aggregate(all, func(rs runStats) int { return rs.play.clicks }))
	fmt.Printf("play_verdicts: player_wins=%d agent_wins=%d draw=%d\n",
		verdicts[match.VerdictPlayer.String()], verdicts[match.VerdictAgent.String()], verdicts[match.VerdictDraw.String()])
}

func verdictCounts(all []runStats) map[string]int {
	counts := map[string]int{}
	for _, rs := range all {
		if rs.played {
			counts[rs.play.verdict]++
		}
	}
	return counts
}
