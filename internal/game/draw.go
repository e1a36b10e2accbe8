package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/maze-search/internal/match"
	"github.com/Garsondee/maze-search/internal/maze"
)

var (
	backgroundColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	titleColor      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	gridLineColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pathColor       = color.RGBA{R: 255, G: 100, B: 255, A: 255} // agent path and scores
	verdictColor    = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// shadeColors maps each display class to its fill colour.
var shadeColors = map[match.Shade]color.RGBA{
	match.ShadeWall:       {R: 0, G: 0, B: 0, A: 255},
	match.ShadeUnexplored: {R: 100, G: 100, B: 100, A: 255},
	match.ShadeFrontier:   {R: 0, G: 0, B: 100, A: 255},
	match.ShadeExplored:   {R: 0, G: 0, B: 255, A: 255},
	match.ShadeGoalFound:  {R: 255, G: 0, B: 0, A: 255},
}

// Glyph scales for basicfont's 7x13 face.
const (
	titleScale   = 5
	buttonScale  = 7
	scoreScale   = 3
	verdictScale = 5
)

func (g *Game) drawMenu(screen *ebiten.Image) {
	w := g.match.Window()
	g.drawText(screen, "Search", float64(w/2-105), 4, titleScale, titleColor)
	vector.StrokeLine(screen, 0, 75, float32(w), 75, 9, color.Black, false)

	b := g.match.PlayButton()
	drawHighlightedRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), color.Black, color.Black, 5, 5)
	g.drawText(screen, b.Label, float64(b.X+15), float64(b.Y+4), buttonScale, color.Black)
}

func (g *Game) drawMaze(screen *ebiten.Image) {
	grid := g.match.Grid()
	cs := float32(g.match.CellSize())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			shade := g.match.ShadeAt(maze.Coord{X: x, Y: y})
			vector.FillRect(screen, float32(x)*cs, float32(y)*cs, cs, cs, shadeColors[shade], false)
		}
	}
	drawGridLines(screen, grid.Width(), grid.Height(), g.match.CellSize(), gridLineColor)
}

// drawGridLines draws the leading edge of every column and row. The far
// edges are left to the window border.
func drawGridLines(screen *ebiten.Image, cols, rows, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	w := float32(cols * spacing)
	h := float32(rows * spacing)
	for x := 0; x < cols; x++ {
		xf := float32(x * spacing)
		vector.StrokeLine(screen, xf, 0, xf, h, 3, c, false)
	}
	for y := 0; y < rows; y++ {
		yf := float32(y * spacing)
		vector.StrokeLine(screen, 0, yf, w, yf, 3, c, false)
	}
}

func (g *Game) drawAgentPath(screen *ebiten.Image) {
	cs := float32(g.match.CellSize())
	for _, c := range g.match.AgentPath() {
		drawHighlightedRect(screen, float32(c.X)*cs, float32(c.Y)*cs, cs, cs, pathColor, pathColor, 4, 1)
	}
}

func (g *Game) drawResult(screen *ebiten.Image) {
	res, ok := g.match.Result()
	if !ok {
		return
	}
	x := float64(g.match.Window()/2 - 320)
	g.drawText(screen, fmt.Sprintf("Player Score : %d", res.PlayerScore), x, 50, scoreScale, pathColor)
	g.drawText(screen, fmt.Sprintf("Computer Score : %d", res.AgentScore), x, 150, scoreScale, pathColor)
	g.drawText(screen, res.Verdict.Banner(), x, 300, verdictScale, verdictColor)
}

// drawHighlightedRect draws a border of width bw with a second stroke of
// width hw just inside it. Both strokes stay within (x, y, w, h).
func drawHighlightedRect(dst *ebiten.Image, x, y, w, h float32, border, highlight color.Color, bw, hw float32) {
	vector.StrokeRect(dst, x+bw/2, y+bw/2, w-bw, h-bw, bw, border, false)
	inset := bw + hw/2
	if w-2*inset <= 0 || h-2*inset <= 0 {
		return
	}
	vector.StrokeRect(dst, x+inset, y+inset, w-2*inset, h-2*inset, hw, highlight, false)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}
