package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/text-adventure/internal/models"
)

// DescribeLocation renders the full description block for the current
// location: the name, an underline, the wrapped description, the ground
// items if any, and the exit listing in the current display mode.
func (s *State) DescribeLocation() string {
	here := s.Here()
	var b strings.Builder
	b.WriteString(s.location)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len(s.location)))
	b.WriteByte('\n')
	b.WriteString(WrapText(here.Description, s.width))
	b.WriteByte('\n')
	if items := s.ground[s.location]; len(items) > 0 {
		b.WriteByte('\n')
		for _, item := range items {
			b.WriteString(s.world.Objects[item].GroundDesc)
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	if s.fullExits {
		b.WriteString(strings.Join(s.exitLines(), "\n"))
	} else {
		names := make([]string, 0, len(here.Exits))
		for _, dir := range models.Directions {
			if _, ok := here.Exits[dir]; ok {
				names = append(names, dir.Title())
			}
		}
		b.WriteString("Exits: " + strings.Join(names, " "))
	}
	return b.String()
}

// exitLines renders every configured exit as "Direction: Target", in the
// canonical direction order.
func (s *State) exitLines() []string {
	here := s.Here()
	lines := make([]string, 0, len(here.Exits))
	for _, dir := range models.Directions {
		if target, ok := here.Exits[dir]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", dir.Title(), target))
		}
	}
	return lines
}

// LookAt resolves token against the ground first, then the inventory, and
// returns the item's wrapped long description.
func (s *State) LookAt(token string) (string, bool) {
	item, ok := s.firstMatching(token, s.ground[s.location])
	if !ok {
		item, ok = s.firstMatching(token, s.inventory)
	}
	if !ok {
		return "", false
	}
	return WrapText(s.world.Objects[item].LongDesc, s.width), true
}

// InventoryText renders the grouped inventory listing. Duplicates collapse
// to a single line with a count suffix, in first-appearance order.
func (s *State) InventoryText() string {
	if len(s.inventory) == 0 {
		return "Inventory:\n  (nothing)"
	}
	counts := make(map[string]int, len(s.inventory))
	for _, item := range s.inventory {
		counts[item]++
	}
	var b strings.Builder
	b.WriteString("Inventory:")
	for _, item := range dedup(s.inventory) {
		if counts[item] > 1 {
			fmt.Fprintf(&b, "\n  %s (%d)", item, counts[item])
		} else {
			b.WriteString("\n  " + item)
		}
	}
	return b.String()
}

// ShopText renders the current shop's catalog, optionally with each item's
// wrapped long description.
func (s *State) ShopText(full bool) (string, error) {
	here := s.Here()
	if !here.IsShop() {
		return "", ErrNotAShop
	}
	var b strings.Builder
	b.WriteString("For sale:")
	for _, item := range here.Shop {
		b.WriteString("\n  - " + item)
		if full {
			b.WriteByte('\n')
			b.WriteString(WrapText(s.world.Objects[item].LongDesc, s.width))
		}
	}
	return b.String(), nil
}
