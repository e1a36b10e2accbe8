package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-search/internal/search"
)

// Config holds the game's configuration values.
type Config struct {
	Width       int               // Maze columns
	Height      int               // Maze rows
	Window      int               // Square window size in pixels
	FPS         int               // Update rate; also the button cooldown in ticks
	Seed        int64             // Maze seed, 0 picks one from the clock
	HoldSeconds int               // How long the result screen stays up
	LogLevel    logrus.Level      // Minimum level logged
	ParentMode  search.ParentMode // How the agent links explored cells
}

// Default returns the stock settings: a 25×25 maze in a
// 700px window at 60 FPS, result shown for five seconds.
func Default() Config {
	return Config{
		Width:       25,
		Height:      25,
		Window:      700,
		FPS:         60,
		HoldSeconds: 5,
		LogLevel:    logrus.InfoLevel,
		ParentMode:  search.ParentPrevious,
	}
}

// CellSize returns the pixel size of one maze cell.
func (c Config) CellSize() int {
	return c.Window / max(c.Width, c.Height)
}

// HoldTicks returns the result-screen duration in update ticks.
func (c Config) HoldTicks() int {
	return c.HoldSeconds * c.FPS
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Load reads a .env file if one is present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("[CONFIG] .env file not found or could not be loaded")
	}
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds a Config from lookup, falling back to Default for unset keys.
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = intEnv(lookup, "MAZE_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intEnv(lookup, "MAZE_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Window, err = intEnv(lookup, "MAZE_WINDOW", cfg.Window); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = intEnv(lookup, "MAZE_FPS", cfg.FPS); err != nil {
		return Config{}, err
	}
	if cfg.HoldSeconds, err = intEnv(lookup, "MAZE_HOLD_SECONDS", cfg.HoldSeconds); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("MAZE_SEED"); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("config: MAZE_SEED must be an integer: %w", err)
		}
	}
	if v, ok := lookup("MAZE_LOG_LEVEL"); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("config: MAZE_LOG_LEVEL: %w", err)
		}
	}
	if v, ok := lookup("MAZE_PARENT_MODE"); ok {
		if cfg.ParentMode, err = search.ParseParentMode(v); err != nil {
			return Config{}, fmt.Errorf("config: MAZE_PARENT_MODE: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("config: maze must be at least 3x3, got %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("config: MAZE_FPS must be positive, got %d", c.FPS)
	case c.HoldSeconds < 0:
		return fmt.Errorf("config: MAZE_HOLD_SECONDS must not be negative, got %d", c.HoldSeconds)
	case c.CellSize() < 1:
		return fmt.Errorf("config: window of %dpx is too small for a %dx%d maze", c.Window, c.Width, c.Height)
	}
	return nil
}

// intEnv returns the integer value of key, or def when the key is unset.
func intEnv(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
