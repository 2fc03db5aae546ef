package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorld = `
title: Test World
start: Square
start_inventory: [Rock]
locations:
  Square:
    description: "An empty square."
    exits:
      north: Alley
    ground: [Rock]
  Alley:
    description: "A narrow alley."
    exits:
      south: Square
    ground: []
objects:
  Rock:
    ground_desc: "A rock sits here."
    short_desc: "a rock"
    long_desc: "Just a rock."
    desc_words: [rock]
`

func TestLoad(t *testing.T) {
	t.Run("valid world", func(t *testing.T) {
		world, err := Load([]byte(validWorld))
		require.NoError(t, err)
		assert.Equal(t, "Square", world.Start)
		assert.Len(t, world.Locations, 2)
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := Load([]byte("{not yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	base := func() *World {
		world, err := Load([]byte(validWorld))
		require.NoError(t, err)
		return world
	}

	t.Run("missing start location", func(t *testing.T) {
		w := base()
		w.Start = "Nowhere"
		err := validate(w)
		require.ErrorIs(t, err, ErrInvalidWorld)
		assert.Contains(t, err.Error(), "start location")
	})

	t.Run("exit to unknown location", func(t *testing.T) {
		w := base()
		w.Locations["Square"].Exits[East] = "Void"
		err := validate(w)
		require.ErrorIs(t, err, ErrInvalidWorld)
		assert.Contains(t, err.Error(), "unknown location")
	})

	t.Run("unknown ground item", func(t *testing.T) {
		w := base()
		w.Locations["Alley"].Ground = []string{"Ghost"}
		require.ErrorIs(t, validate(w), ErrInvalidWorld)
	})

	t.Run("unknown shop item", func(t *testing.T) {
		w := base()
		w.Locations["Alley"].Shop = []string{"Ghost"}
		require.ErrorIs(t, validate(w), ErrInvalidWorld)
	})

	t.Run("unknown start inventory item", func(t *testing.T) {
		w := base()
		w.StartInventory = []string{"Ghost"}
		require.ErrorIs(t, validate(w), ErrInvalidWorld)
	})

	t.Run("object without desc words", func(t *testing.T) {
		w := base()
		w.Objects["Rock"].DescWords = nil
		require.ErrorIs(t, validate(w), ErrInvalidWorld)
	})

	t.Run("upper-case desc word", func(t *testing.T) {
		w := base()
		w.Objects["Rock"].DescWords = []string{"Rock"}
		require.ErrorIs(t, validate(w), ErrInvalidWorld)
	})

	t.Run("bad exit direction", func(t *testing.T) {
		w := base()
		w.Locations["Square"].Exits["sideways"] = "Alley"
		require.ErrorIs(t, validate(w), ErrInvalidWorld)
	})
}
