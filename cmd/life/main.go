//go:build ebiten

package main

import (
	"errors"
	"log"
	"time"

	"github.com/chrismitchell027/conways-game-of-life/internal/app"
	"github.com/chrismitchell027/conways-game-of-life/internal/board"
	"github.com/chrismitchell027/conways-game-of-life/internal/config"
	"github.com/chrismitchell027/conways-game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	settingsPath := "settings.json"
	var seed int64

	flaggy.SetDescription("Interactive Conway's Game of Life")
	flaggy.String(&settingsPath, "f", "settings", "Path to the settings file")
	flaggy.Int64(&seed, "s", "seed", "Seed for the random board (0 uses the current time)")
	flaggy.Parse()

	cfg, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := core.NewRNG(seed)
	b, err := board.Random(cfg.Rows, cfg.Cols, cfg.Density, rng.Source())
	if err != nil {
		log.Fatalf("create board: %v", err)
	}

	game := app.New(cfg, b, rng)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
