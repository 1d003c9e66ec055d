package player

import (
	"math/rand"
)

var botNames = []string{
	"Ante", "Bones", "Chipper", "Domino",
	"Fiver", "Hazard", "Jacks", "Lucky",
	"Pips", "Snake Eyes", "Tally", "Wilder",
}

const (
	LevelNaive  = 1
	LevelGreedy = 2
)

// CreateBot builds a bot of the given level. An empty name draws one
// from the pool.
func CreateBot(level int, name string) Player {
	if name == "" {
		name = botNames[rand.Intn(len(botNames))]
	}
	if level == LevelGreedy {
		return NewGreedyPlayer(name)
	}
	return NewNaivePlayer(name)
}
