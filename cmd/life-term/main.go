package main

import (
	"log"
	"time"

	"github.com/chrismitchell027/conways-game-of-life/internal/board"
	"github.com/chrismitchell027/conways-game-of-life/internal/config"
	"github.com/chrismitchell027/conways-game-of-life/internal/core"
	"github.com/chrismitchell027/conways-game-of-life/internal/term"

	"github.com/integrii/flaggy"
)

func main() {
	settingsPath := "settings.json"
	var seed int64

	flaggy.SetDescription("Terminal frontend for Conway's Game of Life")
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

	if err := term.New(cfg, b, rng).Run(); err != nil {
		log.Fatal(err)
	}
}
