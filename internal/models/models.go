package models

import "strings"

// Direction identifies one of the six exit directions a location may have.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every direction in the canonical display order.
var Directions = []Direction{North, South, East, West, Up, Down}

// ParseDirection resolves a full direction name or its one-letter alias
// (n/s/e/w/u/d), case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	}
	return "", false
}

// Title returns the direction capitalized for display, e.g. "North".
func (d Direction) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[0])) + string(d[1:])
}

// Object is the static template for an item. Actual item instances are the
// name strings held in ground lists and the player's inventory.
type Object struct {
	GroundDesc string `yaml:"ground_desc"` // shown in a location's description block
	ShortDesc  string `yaml:"short_desc"`  // used in sentences like "You take X."
	LongDesc   string `yaml:"long_desc"`   // shown when the player looks at the item

	// Takeable defaults to true when omitted; Edible defaults to false.
	Takeable *bool `yaml:"takeable,omitempty"`
	Edible   bool  `yaml:"edible,omitempty"`

	// DescWords are the tokens a player may use to refer to this object.
	// The first entry is the canonical token offered by input suggestions.
	DescWords []string `yaml:"desc_words"`
}

// IsTakeable resolves the takeable default.
func (o *Object) IsTakeable() bool {
	return o.Takeable == nil || *o.Takeable
}

// Matches reports whether token is one of the object's description words.
// Tokens are compared exactly, not by prefix or substring.
func (o *Object) Matches(token string) bool {
	for _, w := range o.DescWords {
		if w == token {
			return true
		}
	}
	return false
}

// Location is a node in the world graph. Its name doubles as its lookup key
// and its displayed title.
type Location struct {
	Description string               `yaml:"description"`
	Exits       map[Direction]string `yaml:"exits,omitempty"`
	Shop        []string             `yaml:"shop,omitempty"`   // nil means not a shop
	Ground      []string             `yaml:"ground,omitempty"` // initial ground items
}

// IsShop reports whether the location sells anything.
func (l *Location) IsShop() bool {
	return l.Shop != nil
}

// World is the static game world: the location graph, the object catalog,
// and the fixed starting state. Read-only after Load validates it.
type World struct {
	Title          string               `yaml:"title"`
	Start          string               `yaml:"start"`
	StartInventory []string             `yaml:"start_inventory"`
	Locations      map[string]*Location `yaml:"locations"`
	Objects        map[string]*Object   `yaml:"objects"`
}

// Location returns the location definition for id.
func (w *World) Location(id string) (*Location, bool) {
	l, ok := w.Locations[id]
	return l, ok
}

// Object returns the object definition for id.
func (w *World) Object(id string) (*Object, bool) {
	o, ok := w.Objects[id]
	return o, ok
}
