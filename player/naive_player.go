package player

import (
	"github.com/ratel-online/yahtzee/game"
)

type naivePlayer struct {
	basicPlayer
}

// NewNaivePlayer returns a bot that burns the whole roll budget and
// takes the first open category.
func NewNaivePlayer(name string) Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) Play(view game.View) (Command, error) {
	if view.RollsLeft > 0 {
		return Command{Kind: CommandRoll}, nil
	}
	for index, entry := range view.Entries {
		if !entry.Filled {
			return Command{Kind: CommandScore, Index: index}, nil
		}
	}
	return Command{Kind: CommandQuit}, nil
}
