package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/text-adventure/internal/models"
)

func boolPtr(b bool) *bool { return &b }

// testWorld is a small fixture: a yard with two same-named signs (one bolted
// down) and a shed that sells things.
func testWorld() *models.World {
	return &models.World{
		Title:          "Test World",
		Start:          "Yard",
		StartInventory: []string{"Apple", "Stone"},
		Locations: map[string]*models.Location{
			"Yard": {
				Description: "A scruffy yard.",
				Exits:       map[models.Direction]string{models.North: "Shed"},
				Ground:      []string{"Bolted Sign", "Plain Sign", "Stone"},
			},
			"Shed": {
				Description: "A cluttered shed.",
				Exits:       map[models.Direction]string{models.South: "Yard"},
				Shop:        []string{"Apple", "Axe"},
				Ground:      []string{},
			},
		},
		Objects: map[string]*models.Object{
			"Plain Sign": {
				GroundDesc: "A loose sign leans here.",
				ShortDesc:  "a loose sign",
				LongDesc:   "The sign is blank.",
				DescWords:  []string{"sign", "loose"},
			},
			"Bolted Sign": {
				GroundDesc: "A sign is bolted to the ground.",
				ShortDesc:  "a bolted sign",
				LongDesc:   "The sign is firmly bolted down.",
				Takeable:   boolPtr(false),
				DescWords:  []string{"sign", "bolted"},
			},
			"Apple": {
				GroundDesc: "An apple lies here.",
				ShortDesc:  "an apple",
				LongDesc:   "A crisp red apple.",
				Edible:     true,
				DescWords:  []string{"apple", "fruit"},
			},
			"Stone": {
				GroundDesc: "A stone lies here.",
				ShortDesc:  "a stone",
				LongDesc:   "Gray and unremarkable.",
				DescWords:  []string{"stone", "rock"},
			},
			"Axe": {
				GroundDesc: "An axe lies here.",
				ShortDesc:  "an axe",
				LongDesc:   "A small hatchet.",
				DescWords:  []string{"axe"},
			},
		},
	}
}

// holdings counts every instance of item across the current ground list and
// the inventory.
func holdings(s *State, item string) int {
	n := 0
	for _, id := range s.Ground() {
		if id == item {
			n++
		}
	}
	for _, id := range s.Inventory() {
		if id == item {
			n++
		}
	}
	return n
}

func TestNewState(t *testing.T) {
	w := testWorld()
	s := NewState(w)

	assert.Equal(t, "Yard", s.Location())
	assert.Equal(t, []string{"Apple", "Stone"}, s.Inventory())
	assert.True(t, s.FullExits())

	// The ground lists are copies; mutating the session must not touch the
	// static world.
	_, err := s.Take("loose")
	require.NoError(t, err)
	assert.Contains(t, w.Locations["Yard"].Ground, "Plain Sign")
}

func TestMove(t *testing.T) {
	s := NewState(testWorld())

	loc, err := s.Move(models.North)
	require.NoError(t, err)
	assert.Equal(t, "Shed", loc)
	assert.Equal(t, "Shed", s.Location())

	_, err = s.Move(models.East)
	assert.ErrorIs(t, err, ErrNoSuchExit)
	assert.Equal(t, "Shed", s.Location(), "failed move must not change location")
}

func TestTake(t *testing.T) {
	t.Run("skips non-takeable match", func(t *testing.T) {
		s := NewState(testWorld())
		// Both signs match "sign"; the bolted one is listed first.
		item, err := s.Take("sign")
		require.NoError(t, err)
		assert.Equal(t, "Plain Sign", item)
		assert.Contains(t, s.Inventory(), "Plain Sign")
		assert.NotContains(t, s.Inventory(), "Bolted Sign")
		assert.Contains(t, s.Ground(), "Bolted Sign")
	})

	t.Run("all matches non-takeable", func(t *testing.T) {
		s := NewState(testWorld())
		_, err := s.Take("bolted")
		assert.ErrorIs(t, err, ErrItemNotTakeable)
	})

	t.Run("no match", func(t *testing.T) {
		s := NewState(testWorld())
		_, err := s.Take("dragon")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestTakeDropInverse(t *testing.T) {
	s := NewState(testWorld())
	groundBefore := s.Ground()
	invBefore := s.Inventory()

	_, err := s.Take("rock")
	require.NoError(t, err)
	_, err = s.Drop("rock")
	require.NoError(t, err)

	assert.ElementsMatch(t, groundBefore, s.Ground())
	assert.ElementsMatch(t, invBefore, s.Inventory())
}

func TestOwnershipConservation(t *testing.T) {
	s := NewState(testWorld())
	before := holdings(s, "Stone")

	for i := 0; i < 5; i++ {
		_, err := s.Take("stone")
		require.NoError(t, err)
		assert.Equal(t, before, holdings(s, "Stone"))
		_, err = s.Drop("stone")
		require.NoError(t, err)
		assert.Equal(t, before, holdings(s, "Stone"))
	}
}

func TestDropIgnoresTakeableFlag(t *testing.T) {
	w := testWorld()
	w.StartInventory = append(w.StartInventory, "Bolted Sign")
	s := NewState(w)

	// Dropping a non-takeable item works; only re-acquisition is gated.
	item, err := s.Drop("bolted")
	require.NoError(t, err)
	assert.Equal(t, "Bolted Sign", item)
	assert.Contains(t, s.Ground(), "Bolted Sign")

	_, err = s.Take("bolted")
	assert.ErrorIs(t, err, ErrItemNotTakeable)
}

func TestEat(t *testing.T) {
	s := NewState(testWorld())

	item, err := s.Eat("apple")
	require.NoError(t, err)
	assert.Equal(t, "Apple", item)
	assert.Zero(t, holdings(s, "Apple"), "eaten items vanish entirely")

	_, err = s.Eat("stone")
	assert.ErrorIs(t, err, ErrItemNotEdible)

	_, err = s.Eat("apple")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestBuySell(t *testing.T) {
	t.Run("not a shop", func(t *testing.T) {
		s := NewState(testWorld())
		_, err := s.Buy("axe")
		assert.ErrorIs(t, err, ErrNotAShop)
		_, err = s.Sell("apple")
		assert.ErrorIs(t, err, ErrNotAShop)
	})

	t.Run("infinite stock", func(t *testing.T) {
		s := NewState(testWorld())
		_, err := s.Move(models.North)
		require.NoError(t, err)

		for i := 1; i <= 11; i++ {
			_, err := s.Buy("axe")
			require.NoError(t, err)
			assert.Equal(t, i, holdings(s, "Axe"))
			assert.Equal(t, []string{"Apple", "Axe"}, s.Here().Shop, "buying must not drain the shop")
		}
	})

	t.Run("sell removes one instance", func(t *testing.T) {
		s := NewState(testWorld())
		_, err := s.Move(models.North)
		require.NoError(t, err)

		_, err = s.Buy("apple")
		require.NoError(t, err)
		assert.Equal(t, 2, holdings(s, "Apple"))

		item, err := s.Sell("apple")
		require.NoError(t, err)
		assert.Equal(t, "Apple", item)
		assert.Equal(t, 1, holdings(s, "Apple"))
		assert.Empty(t, s.Ground(), "sold items vanish, they do not hit the ground")

		_, err = s.Sell("axe")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestToggleExits(t *testing.T) {
	s := NewState(testWorld())
	require.True(t, s.FullExits())

	assert.False(t, s.ToggleExits())
	assert.True(t, s.ToggleExits(), "two toggles return to the original mode")
}
