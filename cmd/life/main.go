//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifebox/internal/app"
	"lifebox/internal/audio"
	"lifebox/internal/logging"
	"lifebox/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New(cfg.Logging())
	lc := cfg.Life()

	session, err := life.NewSession(lc, life.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	session.Randomize()

	feedback := audio.NewFeedback(audio.NewPlayer(audio.DefaultEnvelope()))
	feedback.SetEnabled(cfg.Sound)

	ctl := app.NewController(session, feedback, logger)
	game := app.New(ctl, cfg)
	logger.Info("starting", "session", session.ID(), "width", lc.Width, "height", lc.Height, "gps", lc.GensPerSecond)

	ebiten.SetWindowTitle("lifebox — Game of Life")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize((lc.Width+2)*lc.CellSize+cfg.HUDWidth, (lc.Height+2)*lc.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
