package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// WorldFile overrides the embedded world data table when set.
	WorldFile string
	// Width is the output column descriptions are wrapped to.
	Width int
	// Plain selects the line-oriented stdin/stdout loop instead of the TUI.
	Plain bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads the configuration from environment variables, after loading a
// .env file if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env file is fine

	cfg := &Config{
		WorldFile: os.Getenv("ADVENTURE_WORLD"),
		Width:     80,
		Plain:     os.Getenv("ADVENTURE_PLAIN") == "1",
		LogLevel:  "info",
	}
	if v := os.Getenv("ADVENTURE_WIDTH"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("invalid ADVENTURE_WIDTH %q", v)
		}
		cfg.Width = width
	}
	if v := os.Getenv("ADVENTURE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
