package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tatianab/text-adventure/internal/config"
	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
	"github.com/tatianab/text-adventure/internal/tui"
)

func main() {
	plain := flag.Bool("plain", false, "use a plain line-oriented loop instead of the TUI")
	worldFile := flag.String("world", "", "path to a world data file (overrides the built-in world)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *plain {
		cfg.Plain = true
	}
	if *worldFile != "" {
		cfg.WorldFile = *worldFile
	}

	logger := newLogger(cfg.LogLevel)

	world, err := loadWorld(cfg)
	if err != nil {
		logger.Error("world data failed validation, refusing to start", "error", err)
		os.Exit(1)
	}
	logger.Debug("world loaded",
		"title", world.Title,
		"locations", len(world.Locations),
		"objects", len(world.Objects))

	state := engine.NewState(world)
	state.SetWidth(cfg.Width)

	if cfg.Plain {
		if err := runPlain(state); err != nil {
			logger.Error("game loop failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(state); err != nil {
		logger.Error("TUI failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(engine.Farewell)
}

func loadWorld(cfg *config.Config) (*models.World, error) {
	if cfg.WorldFile != "" {
		return models.LoadFile(cfg.WorldFile)
	}
	return models.Default()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
