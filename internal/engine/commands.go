package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tatianab/text-adventure/internal/models"
)

// UnknownCommand is printed when the verb is not in the command table.
const UnknownCommand = `I do not understand that command. Type "help" for a list of commands.`

// Farewell is printed once when the player quits.
const Farewell = "Thanks for playing!"

type handlerFunc func(s *State, arg string) string

// completeFunc returns suggestion words for a partially typed argument.
// Pure query; must tolerate an empty candidate set.
type completeFunc func(s *State, prefix string) []string

type command struct {
	name     string
	aliases  []string
	usage    string // empty usage keeps the command out of the help listing
	run      handlerFunc
	complete completeFunc
	terminal bool
}

var (
	commands     []*command
	commandIndex = make(map[string]*command)
)

func register(c *command) {
	commands = append(commands, c)
	commandIndex[c.name] = c
	for _, alias := range c.aliases {
		commandIndex[alias] = c
	}
}

func init() {
	register(&command{
		name:  "move",
		usage: "move <direction> - Move north, south, east, west, up, or down. A bare direction or n/s/e/w/u/d works too.",
		run:   cmdMove, complete: completeMove,
	})
	for _, dir := range models.Directions {
		dir := dir
		register(&command{
			name:    string(dir),
			aliases: []string{string(dir[:1])},
			run: func(s *State, _ string) string {
				return moveTo(s, dir)
			},
		})
	}
	register(&command{
		name:  "look",
		usage: "look [direction or item] - Describe the area, an exit, or an item nearby.",
		run:   cmdLook, complete: completeLook,
	})
	register(&command{
		name:  "take",
		usage: "take <item> - Take an item on the ground.",
		run:   cmdTake, complete: completeTake,
	})
	register(&command{
		name:  "drop",
		usage: "drop <item> - Drop an item from your inventory onto the ground.",
		run:   cmdDrop, complete: completeDrop,
	})
	register(&command{
		name:    "inventory",
		aliases: []string{"inv"},
		usage:   "inventory - Display the items in your possession.",
		run: func(s *State, _ string) string {
			return s.InventoryText()
		},
	})
	register(&command{
		name:  "list",
		usage: "list [full] - List the items for sale at a shop.",
		run:   cmdList,
	})
	register(&command{
		name:  "buy",
		usage: "buy <item> - Buy an item at a shop.",
		run:   cmdBuy, complete: completeBuy,
	})
	register(&command{
		name:  "sell",
		usage: "sell <item> - Sell an item from your inventory at a shop.",
		run:   cmdSell, complete: completeSell,
	})
	register(&command{
		name:  "eat",
		usage: "eat <item> - Eat an item in your inventory.",
		run:   cmdEat, complete: completeEat,
	})
	register(&command{
		name:  "exits",
		usage: "exits - Toggle between full and brief exit descriptions.",
		run: func(s *State, _ string) string {
			if s.ToggleExits() {
				return "Showing full exit descriptions."
			}
			return "Showing brief exit descriptions."
		},
	})
	register(&command{
		name:  "help",
		usage: "help - Show this list of commands.",
		run:   cmdHelp,
	})
	register(&command{
		name:     "quit",
		usage:    "quit - Leave the game.",
		terminal: true,
		run: func(_ *State, _ string) string {
			return Farewell
		},
	})
}

// Dispatch parses one input line into a verb and argument text, runs the
// matching handler, and returns its output. The second result is true only
// for the quit command; every other command, including unrecognized ones,
// leaves the session running. A blank line produces no output and no state
// change.
func Dispatch(s *State, line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	cmd, ok := commandIndex[strings.ToLower(fields[0])]
	if !ok {
		return UnknownCommand, false
	}
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
	return cmd.run(s, arg), cmd.terminal
}

// Completions returns full-line input suggestions for a partially typed
// command. It never mutates state.
func Completions(s *State, line string) []string {
	trimmed := strings.TrimLeft(line, " ")
	verb, rest, hasArg := strings.Cut(trimmed, " ")
	verb = strings.ToLower(verb)
	if !hasArg {
		var names []string
		for _, c := range commands {
			if strings.HasPrefix(c.name, verb) {
				names = append(names, c.name)
			}
		}
		sort.Strings(names)
		return names
	}
	cmd, ok := commandIndex[verb]
	if !ok || cmd.complete == nil {
		return nil
	}
	words := cmd.complete(s, normalize(rest))
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = verb + " " + w
	}
	return lines
}

func moveTo(s *State, dir models.Direction) string {
	if _, err := s.Move(dir); err != nil {
		return "You cannot move in that direction"
	}
	return fmt.Sprintf("You move to the %s.\n%s", dir, s.DescribeLocation())
}

func cmdMove(s *State, arg string) string {
	if strings.TrimSpace(arg) == "" {
		return "Move where? Type a direction: north, south, east, west, up, or down."
	}
	dir, ok := models.ParseDirection(arg)
	if !ok {
		return "You cannot move in that direction"
	}
	return moveTo(s, dir)
}

func cmdLook(s *State, arg string) string {
	lookingAt := normalize(arg)
	if lookingAt == "" {
		return s.DescribeLocation()
	}
	if lookingAt == "exits" {
		return strings.Join(s.exitLines(), "\n")
	}
	if dir, ok := models.ParseDirection(lookingAt); ok {
		if target, ok := s.Here().Exits[dir]; ok {
			return target
		}
		return "There is nothing in that direction."
	}
	if desc, ok := s.LookAt(lookingAt); ok {
		return desc
	}
	return "You do not see that nearby."
}

func cmdTake(s *State, arg string) string {
	itemToTake := normalize(arg)
	if itemToTake == "" {
		return `Take what? Type "look" to see the items on the ground here.`
	}
	item, err := s.Take(itemToTake)
	switch err {
	case nil:
		return fmt.Sprintf("You take %s.", s.world.Objects[item].ShortDesc)
	case ErrItemNotTakeable:
		return fmt.Sprintf("You cannot take %q.", itemToTake)
	default:
		return "That is not on the ground."
	}
}

func cmdDrop(s *State, arg string) string {
	itemToDrop := normalize(arg)
	if itemToDrop == "" {
		return `Drop what? Type "inventory" or "inv" to see your inventory.`
	}
	item, err := s.Drop(itemToDrop)
	if err != nil {
		return fmt.Sprintf("You do not have %q in your inventory.", itemToDrop)
	}
	return fmt.Sprintf("You drop %s.", s.world.Objects[item].ShortDesc)
}

func cmdList(s *State, arg string) string {
	full := normalize(arg) == "full"
	text, err := s.ShopText(full)
	if err != nil {
		return "This is not a shop."
	}
	return text
}

func cmdBuy(s *State, arg string) string {
	itemToBuy := normalize(arg)
	if itemToBuy == "" {
		return `Buy what? Type "list" or "list full" to see a list of items for sale.`
	}
	item, err := s.Buy(itemToBuy)
	switch err {
	case nil:
		return fmt.Sprintf("You have purchased %s", s.world.Objects[item].ShortDesc)
	case ErrNotAShop:
		return "This is not a shop."
	default:
		return fmt.Sprintf("%q is not sold here. Type \"list\" or \"list full\" to see a list of items for sale.", itemToBuy)
	}
}

func cmdSell(s *State, arg string) string {
	itemToSell := normalize(arg)
	if itemToSell == "" {
		return `Sell what? Type "inventory" or "inv" to see your inventory.`
	}
	item, err := s.Sell(itemToSell)
	switch err {
	case nil:
		return fmt.Sprintf("You have sold %s", s.world.Objects[item].ShortDesc)
	case ErrNotAShop:
		return "This is not a shop."
	default:
		return fmt.Sprintf("You do not have %q. Type \"inventory\" or \"inv\" to see your inventory.", itemToSell)
	}
}

func cmdEat(s *State, arg string) string {
	itemToEat := normalize(arg)
	if itemToEat == "" {
		return `Eat what? Type "inventory" or "inv" to see your inventory.`
	}
	item, err := s.Eat(itemToEat)
	switch err {
	case nil:
		return fmt.Sprintf("You eat %s", s.world.Objects[item].ShortDesc)
	case ErrItemNotEdible:
		return "You cannot eat that."
	default:
		return fmt.Sprintf("You do not have %q. Type \"inventory\" or \"inv\" to see your inventory.", itemToEat)
	}
}

func cmdHelp(_ *State, _ string) string {
	var b strings.Builder
	b.WriteString("You can use the following commands:")
	for _, c := range commands {
		if c.usage == "" {
			continue
		}
		b.WriteString("\n  " + c.usage)
	}
	return b.String()
}

func completeMove(s *State, prefix string) []string {
	var dirs []string
	for _, dir := range models.Directions {
		if _, ok := s.Here().Exits[dir]; ok && strings.HasPrefix(string(dir), prefix) {
			dirs = append(dirs, string(dir))
		}
	}
	return dirs
}

func completeLook(s *State, prefix string) []string {
	here := s.Here()
	var words []string
	if prefix == "" {
		words = append(words, s.firstDescWords(s.ground[s.location])...)
		words = append(words, s.firstDescWords(here.Shop)...)
	} else {
		words = append(words, s.descWords(s.ground[s.location])...)
		words = append(words, s.descWords(here.Shop)...)
		words = append(words, s.descWords(s.inventory)...)
	}
	for _, dir := range models.Directions {
		if _, ok := here.Exits[dir]; ok {
			words = append(words, string(dir))
		}
	}
	return filterPrefix(sortedSet(words), prefix)
}

func completeTake(s *State, prefix string) []string {
	if prefix == "" {
		return s.firstDescWords(s.ground[s.location])
	}
	var words []string
	for _, item := range dedup(s.ground[s.location]) {
		if s.world.Objects[item].IsTakeable() {
			words = append(words, s.world.Objects[item].DescWords...)
		}
	}
	return filterPrefix(sortedSet(words), prefix)
}

func completeDrop(s *State, prefix string) []string {
	if prefix == "" {
		return s.firstDescWords(s.inventory)
	}
	return filterPrefix(s.descWords(s.inventory), prefix)
}

func completeBuy(s *State, prefix string) []string {
	shop := s.Here().Shop
	if shop == nil {
		return nil
	}
	if prefix == "" {
		return s.firstDescWords(shop)
	}
	return filterPrefix(s.descWords(shop), prefix)
}

func completeSell(s *State, prefix string) []string {
	if !s.Here().IsShop() {
		return nil
	}
	if prefix == "" {
		return s.firstDescWords(s.inventory)
	}
	return filterPrefix(s.descWords(s.inventory), prefix)
}

func completeEat(s *State, prefix string) []string {
	var edible []string
	for _, item := range s.inventory {
		if s.world.Objects[item].Edible {
			edible = append(edible, item)
		}
	}
	if prefix == "" {
		return s.firstDescWords(edible)
	}
	return filterPrefix(s.descWords(edible), prefix)
}

func filterPrefix(words []string, prefix string) []string {
	if prefix == "" {
		return words
	}
	out := words[:0:0]
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}
