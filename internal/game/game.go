package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/maze-search/internal/match"
)

// Game adapts a match.Match to ebiten: it samples input each frame, hands it
// to the match and draws whatever screen the match is on.
type Game struct {
	match    *match.Match
	log      *logrus.Logger
	face     *text.GoXFace
	prevKeys map[ebiten.Key]bool
	fps      int
}

// New wraps m for ebiten.RunGame. fps controls how often the window title
// refreshes its frame-rate readout.
func New(m *match.Match, log *logrus.Logger, fps int) *Game {
	return &Game{
		match:    m,
		log:      log,
		face:     text.NewGoXFace(basicfont.Face7x13),
		prevKeys: make(map[ebiten.Key]bool),
		fps:      max(fps, 1),
	}
}

func (g *Game) Update() error {
	in := g.handleInput()
	g.match.Update(in)
	if g.match.Done() {
		return ebiten.Termination
	}
	if g.match.Tick()%g.fps == 0 {
		ebiten.SetWindowTitle(fmt.Sprintf("Search - %d", int(ebiten.ActualFPS())))
	}
	return nil
}

// handleInput samples the mouse and the edge-triggered keys for this frame.
// C copies the maze to the clipboard directly; it does not reach the match.
func (g *Game) handleInput() match.Input {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	mx, my := ebiten.CursorPosition()
	in := match.Input{
		CursorX:     mx,
		CursorY:     my,
		LeftHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftClicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:      pressed(ebiten.KeyEscape),
		Quit:        pressed(ebiten.KeyQ),
	}
	if pressed(ebiten.KeyC) {
		g.copyMaze()
	}

	g.prevKeys = currentKeys
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	switch g.match.Screen() {
	case match.ScreenMenu:
		g.drawMenu(screen)
	case match.ScreenPlaying:
		g.drawMaze(screen)
	case match.ScreenFinished:
		g.drawMaze(screen)
		g.drawAgentPath(screen)
		g.drawResult(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.match.Window(), g.match.Window()
}
