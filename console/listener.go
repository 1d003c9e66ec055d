package console

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/yahtzee/event"
)

type logListener struct{}

func registerListeners() {
	listener := &logListener{}
	event.DiceRolled.AddListener(listener)
	event.DieToggled.AddListener(listener)
	event.CategoryScored.AddListener(listener)
	event.GameFinished.AddListener(listener)
}

func (l *logListener) OnDiceRolled(payload event.DiceRolledPayload) {
	log.Infof("dice rolled %v, %d rolls left\n", payload.Values, payload.RollsLeft)
}

func (l *logListener) OnDieToggled(payload event.DieToggledPayload) {
	action := "released"
	if payload.Frozen {
		action = "frozen"
	}
	log.Infof("die %d %s on %d\n", payload.Index+1, action, payload.Value)
}

func (l *logListener) OnCategoryScored(payload event.CategoryScoredPayload) {
	log.Infof("%s scored %d, total %d\n", payload.Category, payload.Points, payload.Total)
}

func (l *logListener) OnGameFinished(payload event.GameFinishedPayload) {
	log.Infof("game finished, %d points in %d turns\n", payload.Total, payload.Turns)
}
