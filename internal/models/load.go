package models

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/world.yaml
var defaultWorld []byte

// ErrInvalidWorld is returned when a world data table fails referential
// integrity validation. The program refuses to start on this error rather
// than deferring to a runtime failure mid-session.
var ErrInvalidWorld = errors.New("invalid world data")

// Load parses a YAML world data table and validates it.
func Load(data []byte) (*World, error) {
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse world data: %w", err)
	}
	if err := validate(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// LoadFile loads a world data table from disk.
func LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Load(data)
}

// Default loads the embedded world data table. The embedded table is
// validated like any other, so a bad edit to it fails at startup.
func Default() (*World, error) {
	return Load(defaultWorld)
}

func validate(w *World) error {
	if len(w.Locations) == 0 {
		return fmt.Errorf("%w: no locations defined", ErrInvalidWorld)
	}
	if _, ok := w.Locations[w.Start]; !ok {
		return fmt.Errorf("%w: start location %q is not defined", ErrInvalidWorld, w.Start)
	}
	for id, obj := range w.Objects {
		if len(obj.DescWords) == 0 {
			return fmt.Errorf("%w: object %q has no description words", ErrInvalidWorld, id)
		}
		for _, word := range obj.DescWords {
			if word == "" || word != strings.ToLower(word) {
				return fmt.Errorf("%w: object %q has bad description word %q", ErrInvalidWorld, id, word)
			}
		}
	}
	for id, loc := range w.Locations {
		for dir, target := range loc.Exits {
			if _, ok := ParseDirection(string(dir)); !ok {
				return fmt.Errorf("%w: location %q has unknown direction %q", ErrInvalidWorld, id, dir)
			}
			if _, ok := w.Locations[target]; !ok {
				return fmt.Errorf("%w: location %q exit %s points to unknown location %q", ErrInvalidWorld, id, dir, target)
			}
		}
		for _, item := range loc.Ground {
			if _, ok := w.Objects[item]; !ok {
				return fmt.Errorf("%w: location %q has unknown ground item %q", ErrInvalidWorld, id, item)
			}
		}
		for _, item := range loc.Shop {
			if _, ok := w.Objects[item]; !ok {
				return fmt.Errorf("%w: location %q sells unknown item %q", ErrInvalidWorld, id, item)
			}
		}
	}
	for _, item := range w.StartInventory {
		if _, ok := w.Objects[item]; !ok {
			return fmt.Errorf("%w: start inventory has unknown item %q", ErrInvalidWorld, item)
		}
	}
	return nil
}
