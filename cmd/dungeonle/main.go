// Package main is the entry point for Dungeonle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonle/internal/game"
	"github.com/samdwyer/dungeonle/internal/gamedata"
	"github.com/samdwyer/dungeonle/internal/telemetry"
	"github.com/samdwyer/dungeonle/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	var strategy string
	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "map seed (empty for a random map)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in tiles")
	flag.Float64Var(&cfg.WhiteLevel, "white", cfg.WhiteLevel, "noise threshold in [0,1]; higher means more walls")
	flag.StringVar(&strategy, "strategy", string(cfg.Strategy), "marker placement: derived or legacy")
	dump := flag.Bool("dump", false, "print the classified map and exit")
	flag.Parse()

	if cfg.Strategy, err = world.ParseStrategy(strategy); err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}

	// Point the OTLP exporter at Honeycomb
	telemetry.ConfigureEnv("dungeonle")

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := gamedata.LoadSpriteRegistry()
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	if *dump {
		if err := dumpMap(ctx, cfg, registry); err != nil {
			log.Fatalf("Failed to generate map: %v", err)
		}
		return
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		log.Fatalf("Failed to load palette: %v", err)
	}

	// Create and run game
	g, err := game.New(cfg, registry, palette)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// dumpMap prints the classified map, one row per line, then a sprite count.
func dumpMap(ctx context.Context, cfg game.Config, registry *gamedata.SpriteRegistry) error {
	w, err := game.NewWorld(ctx, cfg, registry)
	if err != nil {
		return err
	}
	for _, row := range world.Draw(w.Grid()) {
		fmt.Println(row)
	}
	fmt.Fprintf(os.Stderr, "%d sprites\n", len(w.Sprites()))
	return nil
}
