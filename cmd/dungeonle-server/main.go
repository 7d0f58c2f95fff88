// Package main serves Dungeonle sessions over websockets.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonle/internal/game"
	"github.com/samdwyer/dungeonle/internal/gamedata"
	"github.com/samdwyer/dungeonle/internal/server"
	"github.com/samdwyer/dungeonle/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "default map seed (clients may pass ?seed=)")
	flag.Parse()

	telemetry.ConfigureEnv("dungeonle-server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := gamedata.LoadSpriteRegistry()
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	srv := server.New(cfg, registry, telemetry.Logger().WithName("server"))
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
