package game

import "github.com/atotto/clipboard"

// copyMaze puts the maze's text form on the system clipboard.
func (g *Game) copyMaze() {
	if err := clipboard.WriteAll(g.match.Export()); err != nil {
		g.log.WithError(err).Warn("[GAME] could not copy maze to clipboard")
		return
	}
	g.log.WithField("match", g.match.ID().String()).Info("[GAME] maze copied to clipboard")
}
