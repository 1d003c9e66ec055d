package player

import (
	"github.com/ratel-online/yahtzee/game"
	"github.com/ratel-online/yahtzee/scorecard"
)

type greedyPlayer struct {
	basicPlayer
}

// NewGreedyPlayer returns a bot that freezes the most frequent face
// between rolls and commits the best paying open category.
func NewGreedyPlayer(name string) Player {
	return greedyPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p greedyPlayer) Play(view game.View) (Command, error) {
	if fresh(view.Values) {
		return Command{Kind: CommandRoll}, nil
	}
	if view.RollsLeft > 0 {
		face := dominantFace(view.Values)
		for index, die := range view.Dice {
			if die.Value == face && !die.Frozen {
				return Command{Kind: CommandFreeze, Index: index}, nil
			}
		}
		if !allFrozen(view) {
			return Command{Kind: CommandRoll}, nil
		}
	}
	if index := bestCategory(view); index >= 0 {
		return Command{Kind: CommandScore, Index: index}, nil
	}
	return Command{Kind: CommandQuit}, nil
}

func fresh(values []int) bool {
	for _, value := range values {
		if value != 0 {
			return false
		}
	}
	return true
}

// dominantFace picks the most frequent face, ties go to the higher one.
func dominantFace(values []int) int {
	counts := map[int]int{}
	face := 0
	for _, value := range values {
		counts[value]++
		if counts[value] > counts[face] || (counts[value] == counts[face] && value > face) {
			face = value
		}
	}
	return face
}

func allFrozen(view game.View) bool {
	for _, die := range view.Dice {
		if !die.Frozen {
			return false
		}
	}
	return true
}

func bestCategory(view game.View) int {
	definitions := scorecard.Definitions()
	bestIndex := -1
	bestPoints := -1
	for index, entry := range view.Entries {
		if entry.Filled {
			continue
		}
		points := definitions[index].Rule.Evaluate(view.Values)
		if points > bestPoints {
			bestIndex = index
			bestPoints = points
		}
	}
	return bestIndex
}
