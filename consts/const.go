package consts

import (
	"time"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateGame
)

const (
	ModeHuman  = "human"
	ModeNaive  = "naive"
	ModeGreedy = "greedy"
)

// BotPlayInterval paces watched bot games so the board stays readable.
const BotPlayInterval = 500 * time.Millisecond

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExit         = NewErr(1, true, "Exit. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsGameInvalid  = NewErr(1, false, "Game invalid. ")
	ErrorsStateInvalid = NewErr(1, true, "State invalid. ")
)
