package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-search/internal/config"
	"github.com/Garsondee/maze-search/internal/game"
	"github.com/Garsondee/maze-search/internal/match"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("[APP] invalid configuration")
	}
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)

	m, err := match.New(append(match.ConfigOptions(cfg), match.WithLogger(log))...)
	if err != nil {
		log.WithError(err).Fatal("[APP] could not set up match")
	}

	ebiten.SetWindowTitle("Search")
	ebiten.SetWindowSize(cfg.Window, cfg.Window)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(game.New(m, log, cfg.FPS)); err != nil {
		log.Fatal(err)
	}
}
