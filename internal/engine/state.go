package engine

import (
	"github.com/tatianab/text-adventure/internal/models"
)

// DefaultWidth is the output column the player's terminal is assumed to have.
const DefaultWidth = 80

// State is the mutable runtime state of a single game session: where the
// player is, what they carry, what lies on the ground in each location, and
// how exits are displayed. The static World is never mutated; ground lists
// are copied out of it at construction.
//
// State is not safe for concurrent use. All mutation happens inside a single
// command turn.
type State struct {
	world     *models.World
	location  string
	inventory []string
	ground    map[string][]string
	fullExits bool
	width     int
}

// NewState starts a fresh session at the world's fixed starting location
// with the fixed starting inventory. Full exit descriptions start enabled.
func NewState(w *models.World) *State {
	ground := make(map[string][]string, len(w.Locations))
	for id, loc := range w.Locations {
		ground[id] = append([]string(nil), loc.Ground...)
	}
	return &State{
		world:     w,
		location:  w.Start,
		inventory: append([]string(nil), w.StartInventory...),
		ground:    ground,
		fullExits: true,
		width:     DefaultWidth,
	}
}

// SetWidth changes the wrap column for descriptions.
func (s *State) SetWidth(w int) {
	if w > 0 {
		s.width = w
	}
}

// World returns the static world this session plays in.
func (s *State) World() *models.World { return s.world }

// Location returns the current location id.
func (s *State) Location() string { return s.location }

// Here returns the current location's definition. The current location id is
// guaranteed valid by world validation plus Move only following exits.
func (s *State) Here() *models.Location {
	return s.world.Locations[s.location]
}

// Ground returns the items lying in the current location.
func (s *State) Ground() []string {
	return append([]string(nil), s.ground[s.location]...)
}

// Inventory returns a copy of the items the player carries.
func (s *State) Inventory() []string {
	return append([]string(nil), s.inventory...)
}

// FullExits reports whether exit listings show full name:target pairs.
func (s *State) FullExits() bool { return s.fullExits }

// ToggleExits flips the exit display mode and returns the new value.
func (s *State) ToggleExits() bool {
	s.fullExits = !s.fullExits
	return s.fullExits
}

// Move follows the exit in dir, returning the new location id, or
// ErrNoSuchExit if the current location has no such exit.
func (s *State) Move(dir models.Direction) (string, error) {
	target, ok := s.Here().Exits[dir]
	if !ok {
		return "", ErrNoSuchExit
	}
	s.location = target
	return target, nil
}

// Take moves the first takeable item matching desc from the current ground
// list into the inventory and returns its id. When items match but none are
// takeable it returns ErrItemNotTakeable; when nothing matches,
// ErrItemNotFound.
func (s *State) Take(desc string) (string, error) {
	matches := s.allMatching(desc, s.ground[s.location])
	if len(matches) == 0 {
		return "", ErrItemNotFound
	}
	for _, item := range matches {
		if !s.world.Objects[item].IsTakeable() {
			continue
		}
		s.ground[s.location] = removeOne(s.ground[s.location], item)
		s.inventory = append(s.inventory, item)
		return item, nil
	}
	return "", ErrItemNotTakeable
}

// Drop moves one inventory item matching desc onto the current ground list.
// The takeable flag does not gate dropping, only re-acquisition.
func (s *State) Drop(desc string) (string, error) {
	item, ok := s.firstMatching(desc, s.inventory)
	if !ok {
		return "", ErrItemNotFound
	}
	s.inventory = removeOne(s.inventory, item)
	s.ground[s.location] = append(s.ground[s.location], item)
	return item, nil
}

// Eat removes one edible inventory item matching desc. The item is gone for
// good; it is not placed anywhere.
func (s *State) Eat(desc string) (string, error) {
	matches := s.allMatching(desc, s.inventory)
	if len(matches) == 0 {
		return "", ErrItemNotFound
	}
	for _, item := range matches {
		if !s.world.Objects[item].Edible {
			continue
		}
		s.inventory = removeOne(s.inventory, item)
		return item, nil
	}
	return "", ErrItemNotEdible
}

// Buy appends a new copy of a shop item matching desc to the inventory. The
// shop list itself is never mutated: shop stock is infinite.
func (s *State) Buy(desc string) (string, error) {
	here := s.Here()
	if !here.IsShop() {
		return "", ErrNotAShop
	}
	item, ok := s.firstMatching(desc, here.Shop)
	if !ok {
		return "", ErrItemNotFound
	}
	s.inventory = append(s.inventory, item)
	return item, nil
}

// Sell removes one inventory item matching desc. Sold items vanish; nothing
// is added anywhere.
func (s *State) Sell(desc string) (string, error) {
	if !s.Here().IsShop() {
		return "", ErrNotAShop
	}
	item, ok := s.firstMatching(desc, s.inventory)
	if !ok {
		return "", ErrItemNotFound
	}
	s.inventory = removeOne(s.inventory, item)
	return item, nil
}

// removeOne deletes the first occurrence of item, preserving order.
func removeOne(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
