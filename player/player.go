package player

import (
	"github.com/ratel-online/yahtzee/game"
)

type CommandKind int

const (
	_ CommandKind = iota
	CommandRoll
	CommandFreeze
	CommandScore
	CommandBoard
	CommandQuit
)

// Command is one player decision. Index addresses a die for freezes
// and a category for scores, zero based.
type Command struct {
	Kind  CommandKind
	Index int
}

// Player picks the next command for a table view. Implementations may
// block on user input.
type Player interface {
	Name() string
	Play(view game.View) (Command, error)
}
