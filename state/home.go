package state

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ratel-online/yahtzee/consts"
	"github.com/ratel-online/yahtzee/database"
	"github.com/ratel-online/yahtzee/dice"
	"github.com/ratel-online/yahtzee/game"
	playerx "github.com/ratel-online/yahtzee/player"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	buf := bytes.Buffer{}
	buf.WriteString("1.Play\n")
	buf.WriteString("2.Watch a bot\n")
	buf.WriteString("3.Results\n")
	buf.WriteString("0.Exit\n")
	err := player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if selected == 1 {
		return startGame(player, database.NewHumanActor(player), consts.ModeHuman)
	} else if selected == 2 {
		return askForBot(player)
	} else if selected == 3 {
		viewResults(player)
		return 0, nil
	} else if selected == 0 {
		return 0, consts.ErrorsExit
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}

func startGame(player *database.Player, actor playerx.Player, mode string) (consts.StateID, error) {
	engine := game.New(game.Config{
		Rolls:  player.Config.Rolls,
		Dice:   player.Config.Dice,
		Source: dice.NewSource(player.Config.Seed),
	})
	g := database.CreateGame(player, engine, actor, mode)
	player.GameID = g.ID
	return consts.StateGame, nil
}

func askForBot(player *database.Player) (consts.StateID, error) {
	buf := bytes.Buffer{}
	buf.WriteString("1.Naive bot\n")
	buf.WriteString("2.Greedy bot\n")
	err := player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	level, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if level != playerx.LevelNaive && level != playerx.LevelGreedy {
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	mode := consts.ModeNaive
	if level == playerx.LevelGreedy {
		mode = consts.ModeGreedy
	}
	return startGame(player, playerx.CreateBot(level, ""), mode)
}

func viewResults(player *database.Player) {
	results := database.GetResults()
	if len(results) == 0 {
		_ = player.WriteString("No finished games yet. \n")
		return
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-5s%-15s%-10s%-10s%-10s%-10s\n", "Rank", "Player", "Mode", "Score", "Turns", "Time"))
	for i, result := range results {
		buf.WriteString(fmt.Sprintf("%-5d%-15s%-10s%-10d%-10d%-10s\n", i+1, result.Player, result.Mode, result.Score, result.Turns, result.Duration.Round(time.Second)))
	}
	_ = player.WriteString(buf.String())
}
