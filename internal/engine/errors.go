package engine

import "errors"

// Gameplay errors. All of these are recoverable: command handlers translate
// them into printed messages and the session keeps running.
var (
	ErrNoSuchExit      = errors.New("no exit in that direction")
	ErrItemNotFound    = errors.New("no item matches that description")
	ErrItemNotTakeable = errors.New("item cannot be taken")
	ErrItemNotEdible   = errors.New("item cannot be eaten")
	ErrNotAShop        = errors.New("this location is not a shop")
	ErrEmptyArgument   = errors.New("missing argument")
)
