package game

import (
	"github.com/ratel-online/yahtzee/dice"
	"github.com/ratel-online/yahtzee/scorecard"
)

// View is a snapshot of the table for players and renderers.
type View struct {
	Dice      []dice.View
	Values    []int
	RollsLeft int
	Turn      int
	Entries   []scorecard.Entry
	Total     int
}

func (g *Game) View() View {
	return View{
		Dice:      g.set.Views(),
		Values:    g.set.Values(),
		RollsLeft: g.rolls,
		Turn:      g.turns + 1,
		Entries:   g.card.Entries(),
		Total:     g.card.Total(),
	}
}
