package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/dungeonle/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed       = "DUNGEONLE_SEED"
	EnvWidth      = "DUNGEONLE_WIDTH"
	EnvHeight     = "DUNGEONLE_HEIGHT"
	EnvWhiteLevel = "DUNGEONLE_WHITE_LEVEL"
	EnvStrategy   = "DUNGEONLE_STRATEGY"
	EnvAddr       = "DUNGEONLE_ADDR"
)

// DefaultAddr is where the websocket server listens unless told otherwise.
const DefaultAddr = ":8080"

// Config holds game configuration options.
type Config struct {
	// Seed keys the noise stream. The same seed always yields the same map.
	// An empty seed means a random map.
	Seed string

	Width      int
	Height     int
	WhiteLevel float64
	Strategy   world.Strategy

	// Addr is the listen address of the websocket server.
	Addr string
}

// DefaultConfig returns a 24x24 map with even noise and derived markers.
func DefaultConfig() Config {
	return Config{
		Width:      world.DefaultWidth,
		Height:     world.DefaultHeight,
		WhiteLevel: world.DefaultWhiteLevel,
		Strategy:   world.StrategyDerived,
		Addr:       DefaultAddr,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any DUNGEONLE_*
// variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.Seed = os.Getenv(EnvSeed)
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	var err error
	if cfg.Width, err = envInt(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if v := os.Getenv(EnvWhiteLevel); v != "" {
		if cfg.WhiteLevel, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvWhiteLevel, err)
		}
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		if cfg.Strategy, err = world.ParseStrategy(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvStrategy, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks dimensions, white level and strategy.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", world.ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.WhiteLevel < 0 || c.WhiteLevel > 1 {
		return fmt.Errorf("%w: %v", world.ErrInvalidWhiteLevel, c.WhiteLevel)
	}
	if _, err := world.ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	return nil
}

// Params returns the generation parameters for this config.
func (c Config) Params() world.Params {
	return world.Params{
		Width:      c.Width,
		Height:     c.Height,
		WhiteLevel: c.WhiteLevel,
		Seed:       c.Seed,
	}
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
