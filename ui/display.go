package ui

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ratel-online/yahtzee/dice"
	"github.com/ratel-online/yahtzee/game"
	"github.com/ratel-online/yahtzee/scorecard"
)

func Title() string {
	return red("%s", "YAH") + yellow("%s", "T") + cyan("%s", "ZEE")
}

// RenderDice draws one line of dice. Frozen dice get angle brackets,
// unrolled dice a blank face.
func RenderDice(views []dice.View) string {
	buf := bytes.Buffer{}
	for i, view := range views {
		if i > 0 {
			buf.WriteString(" ")
		}
		face := " "
		if view.Value > 0 {
			face = strconv.Itoa(view.Value)
		}
		if view.Frozen {
			buf.WriteString(cyan("< %s >", face))
		} else {
			buf.WriteString(fmt.Sprintf("[ %s ]", face))
		}
	}
	return buf.String()
}

// RenderScorecard draws the card five categories per row, numbered the
// way score commands address them.
func RenderScorecard(entries []scorecard.Entry) string {
	buf := bytes.Buffer{}
	for i, entry := range entries {
		points := "-"
		if entry.Filled {
			points = strconv.Itoa(entry.Points)
		}
		cell := fmt.Sprintf("%2d.%-15s%-5s", i+1, entry.Name, points)
		if entry.Filled {
			cell = green("%s", cell)
		}
		buf.WriteString(cell)
		if (i+1)%5 == 0 || i == len(entries)-1 {
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func RenderBoard(view game.View) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Turn %d, rolls left %d, total %d\n", view.Turn, view.RollsLeft, view.Total))
	buf.WriteString(RenderDice(view.Dice) + "\n")
	buf.WriteString(RenderScorecard(view.Entries))
	return buf.String()
}
