package engine

import (
	"sort"
	"strings"
)

// The reference resolver maps a free-text token from the player onto a
// concrete item id within a candidate list (ground items, inventory, or a
// shop list). Matching is exact-token only: "axe" matches the War Axe, but
// "axes" and "ax" do not. When several candidates share a description word,
// the first match in list order wins; candidate lists keep their authored
// order, so resolution is deterministic.

// normalize lower-cases and trims a player-supplied token.
func normalize(desc string) string {
	return strings.ToLower(strings.TrimSpace(desc))
}

// firstMatching returns the first candidate whose description words contain
// desc exactly. Duplicate candidates are considered once, at their first
// position.
func (s *State) firstMatching(desc string, ids []string) (string, bool) {
	desc = normalize(desc)
	if desc == "" {
		return "", false
	}
	for _, id := range dedup(ids) {
		if s.world.Objects[id].Matches(desc) {
			return id, true
		}
	}
	return "", false
}

// allMatching returns every candidate whose description words contain desc
// exactly, in list order. Handlers that gate on a flag (takeable, edible)
// use this so a second same-named candidate with a different flag value can
// still succeed.
func (s *State) allMatching(desc string, ids []string) []string {
	desc = normalize(desc)
	if desc == "" {
		return nil
	}
	var matches []string
	for _, id := range dedup(ids) {
		if s.world.Objects[id].Matches(desc) {
			matches = append(matches, id)
		}
	}
	return matches
}

// descWords returns the sorted set of every description word across the
// candidates. Used only to offer input suggestions.
func (s *State) descWords(ids []string) []string {
	var words []string
	for _, id := range dedup(ids) {
		words = append(words, s.world.Objects[id].DescWords...)
	}
	return sortedSet(words)
}

// firstDescWords returns the sorted set of each candidate's canonical
// (first) description word.
func (s *State) firstDescWords(ids []string) []string {
	var words []string
	for _, id := range dedup(ids) {
		words = append(words, s.world.Objects[id].DescWords[0])
	}
	return sortedSet(words)
}

// dedup removes duplicates, keeping each id at its first position.
func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func sortedSet(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
